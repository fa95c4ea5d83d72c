package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFormatVersion = errors.New("invalid snapshot format version")
	ErrEmptyID              = errors.New("record id is required")
	ErrDuplicateID          = errors.New("duplicate record id")
	ErrMissingUpdatedAt     = errors.New("record updated_at is required")
	ErrInvalidDeletedAt     = errors.New("deleted_at is set on a record that is not deleted")
	ErrInvalidShiftInterval = errors.New("shift ends before it starts")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrNegativeRate         = errors.New("hourly rate cannot be negative")
	ErrInvalidWeekStart     = errors.New("week start must be between 0 and 6")
)

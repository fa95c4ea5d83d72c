package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shift-keeper/models"
)

// Field name constants select the checks to run. They are passed to
// Validate to restrict validation to a subset of rules.
const (
	// FieldFormatVersion checks that a snapshot carries the current layout version.
	FieldFormatVersion = "format_version"

	// FieldShifts validates every shift of a snapshot and their ID uniqueness.
	FieldShifts = "shifts"

	// FieldExpenses validates every expense of a snapshot and their ID uniqueness.
	FieldExpenses = "expenses"

	// FieldSettings validates the settings record of a snapshot, if any.
	FieldSettings = "settings"

	// FieldID requires a non-empty record ID.
	FieldID = "id"

	// FieldUpdatedAt requires a non-zero modification timestamp; restore
	// cannot order a record without one.
	FieldUpdatedAt = "updated_at"

	// FieldDeletedAt rejects a deletion timestamp on a live record.
	FieldDeletedAt = "deleted_at"

	// FieldInterval rejects a shift that ends before it starts.
	FieldInterval = "interval"

	// FieldRate rejects negative hourly rates.
	FieldRate = "rate"

	// FieldAmount rejects negative expense amounts.
	FieldAmount = "amount"

	// FieldWeekStart checks the settings' first day of the week.
	FieldWeekStart = "week_start"
)

// integrityFields are the record checks run inside a snapshot. They cover
// what merging needs (an identity and an ordering timestamp) and nothing
// about the content, so every record the live store holds can be restored.
var integrityFields = []string{FieldID, FieldUpdatedAt}

// SnapshotValidator implements [Validator] for decoded backup snapshots and
// the records they carry. A snapshot that fails validation must not be
// merged into live data.
//
// Records validated on their own get the full rule set by default; records
// inside a snapshot only get the integrity checks.
type SnapshotValidator struct{}

// NewSnapshotValidator returns a [SnapshotValidator] as a [Validator].
func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		return v.validateSnapshot(ctx, *value, fields...)

	case models.Shift:
		return v.validateShift(value, fields...)
	case *models.Shift:
		return v.validateShift(*value, fields...)

	case models.Expense:
		return v.validateExpense(value, fields...)
	case *models.Expense:
		return v.validateExpense(*value, fields...)

	case models.UserSettings:
		return v.validateSettings(value, fields...)
	case *models.UserSettings:
		return v.validateSettings(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SnapshotValidator) validateSnapshot(ctx context.Context, snap models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormatVersion, FieldShifts, FieldExpenses, FieldSettings}
	}

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch f {
		case FieldFormatVersion:
			if snap.FormatVersion != models.CurrentSnapshotFormat {
				return ErrInvalidFormatVersion
			}
		case FieldShifts:
			seen := make(map[string]struct{}, len(snap.Shifts))
			for i, shift := range snap.Shifts {
				if err := v.validateShift(shift, integrityFields...); err != nil {
					return fmt.Errorf("shift at index %d: %w", i, err)
				}
				if err := checkUnique(seen, shift.ID); err != nil {
					return fmt.Errorf("shift at index %d: %w", i, err)
				}
			}
		case FieldExpenses:
			seen := make(map[string]struct{}, len(snap.Expenses))
			for i, expense := range snap.Expenses {
				if err := v.validateExpense(expense, integrityFields...); err != nil {
					return fmt.Errorf("expense at index %d: %w", i, err)
				}
				if err := checkUnique(seen, expense.ID); err != nil {
					return fmt.Errorf("expense at index %d: %w", i, err)
				}
			}
		case FieldSettings:
			if snap.Settings == nil {
				continue
			}
			if err := v.validateSettings(*snap.Settings, integrityFields...); err != nil {
				return fmt.Errorf("settings: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SnapshotValidator) validateShift(shift models.Shift, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdatedAt, FieldDeletedAt, FieldInterval, FieldRate}
	}

	for _, f := range fields {
		switch f {
		case FieldInterval:
			if shift.EndedAt != nil && shift.EndedAt.Before(shift.StartedAt) {
				return ErrInvalidShiftInterval
			}
		case FieldRate:
			if shift.HourlyRateCents < 0 {
				return ErrNegativeRate
			}
		default:
			if err := validateMeta(shift.RecordMeta, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *SnapshotValidator) validateExpense(expense models.Expense, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdatedAt, FieldDeletedAt, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if expense.AmountCents < 0 {
				return ErrNegativeAmount
			}
		default:
			if err := validateMeta(expense.RecordMeta, f); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *SnapshotValidator) validateSettings(settings models.UserSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdatedAt, FieldDeletedAt, FieldRate, FieldWeekStart}
	}

	for _, f := range fields {
		switch f {
		case FieldRate:
			if settings.DefaultHourlyRateCents < 0 {
				return ErrNegativeRate
			}
		case FieldWeekStart:
			if settings.WeekStartsOn < 0 || settings.WeekStartsOn > 6 {
				return ErrInvalidWeekStart
			}
		default:
			if err := validateMeta(settings.RecordMeta, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateMeta runs the checks shared by every record kind.
func validateMeta(meta models.RecordMeta, field string) error {
	switch field {
	case FieldID:
		if meta.ID == "" {
			return ErrEmptyID
		}
	case FieldUpdatedAt:
		if meta.UpdatedAt.IsZero() {
			return ErrMissingUpdatedAt
		}
	case FieldDeletedAt:
		if meta.DeletedAt != nil && !meta.Deleted {
			return ErrInvalidDeletedAt
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func checkUnique(seen map[string]struct{}, id string) error {
	if _, ok := seen[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	seen[id] = struct{}{}
	return nil
}

package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-shift-keeper/models"
)

type jsonSerializer struct {
	now func() time.Time
}

// Option customises the serializer returned by [NewSerializer].
type Option func(*jsonSerializer)

// WithClock sets the clock used for the exportedAt field.
func WithClock(now func() time.Time) Option {
	return func(s *jsonSerializer) {
		s.now = now
	}
}

// NewSerializer returns the JSON [Serializer].
func NewSerializer(opts ...Option) Serializer {
	s := &jsonSerializer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *jsonSerializer) Serialize(userID int64, shifts []models.Shift, expenses []models.Expense, settings *models.UserSettings) ([]byte, error) {
	snap := models.Snapshot{
		FormatVersion: models.CurrentSnapshotFormat,
		ExportedAt:    s.now().UTC(),
		UserID:        userID,
		Shifts:        normalizeShifts(shifts),
		Expenses:      normalizeExpenses(expenses),
	}
	if settings != nil {
		normalized := settings.Normalize()
		snap.Settings = &normalized
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// header is decoded first so that a document from a newer version is
// rejected before its body is interpreted.
type header struct {
	FormatVersion *int `json:"formatVersion"`
}

func (s *jsonSerializer) Deserialize(data []byte) (models.Snapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return models.Snapshot{}, fmt.Errorf("%w: empty document", ErrUnsupportedFormat)
	}

	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if h.FormatVersion == nil {
		return models.Snapshot{}, fmt.Errorf("%w: formatVersion is missing", ErrUnsupportedFormat)
	}
	if *h.FormatVersion != models.CurrentSnapshotFormat {
		return models.Snapshot{}, fmt.Errorf("%w: formatVersion %d", ErrUnsupportedFormat, *h.FormatVersion)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	snap.ExportedAt = snap.ExportedAt.UTC()
	snap.Shifts = normalizeShifts(snap.Shifts)
	snap.Expenses = normalizeExpenses(snap.Expenses)
	if snap.Settings != nil {
		normalized := snap.Settings.Normalize()
		snap.Settings = &normalized
	}

	return snap, nil
}

// normalizeShifts returns a sorted UTC copy; the input is left untouched.
func normalizeShifts(in []models.Shift) []models.Shift {
	out := make([]models.Shift, len(in))
	for i, s := range in {
		out[i] = s.Normalize()
	}
	slices.SortStableFunc(out, func(a, b models.Shift) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func normalizeExpenses(in []models.Expense) []models.Expense {
	out := make([]models.Expense, len(in))
	for i, e := range in {
		out[i] = e.Normalize()
	}
	slices.SortStableFunc(out, func(a, b models.Expense) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-shift-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	moscow   = time.FixedZone("MSK", 3*60*60)
)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func sampleData() ([]models.Shift, []models.Expense, *models.UserSettings) {
	started := time.Date(2026, 3, 10, 8, 0, 0, 0, moscow)
	ended := started.Add(8 * time.Hour)
	deletedAt := time.Date(2026, 3, 12, 10, 0, 0, 0, moscow)

	shifts := []models.Shift{
		{
			RecordMeta:      models.RecordMeta{ID: "s-2", UserID: 7, CreatedAt: started, UpdatedAt: ended},
			StartedAt:       started,
			EndedAt:         &ended,
			HourlyRateCents: 2500,
			Location:        "warehouse",
		},
		{
			RecordMeta: models.RecordMeta{ID: "s-1", UserID: 7, Deleted: true, DeletedAt: &deletedAt, CreatedAt: started, UpdatedAt: deletedAt},
			StartedAt:  started,
			Notes:      "cancelled",
		},
	}
	expenses := []models.Expense{
		{
			RecordMeta:  models.RecordMeta{ID: "e-1", UserID: 7, CreatedAt: started, UpdatedAt: started},
			ShiftID:     ptr("s-2"),
			AmountCents: 1250,
			Currency:    "EUR",
			Category:    "fuel",
			IncurredAt:  started,
		},
	}
	settings := &models.UserSettings{
		RecordMeta:             models.RecordMeta{ID: "settings-7", UserID: 7, CreatedAt: started, UpdatedAt: started},
		Currency:               "EUR",
		DefaultHourlyRateCents: 2500,
		WeekStartsOn:           1,
		Theme:                  "dark",
	}
	return shifts, expenses, settings
}

func TestSerialize_RoundTrip(t *testing.T) {
	s := NewSerializer(WithClock(fixedClock))
	shifts, expenses, settings := sampleData()

	data, err := s.Serialize(7, shifts, expenses, settings)
	require.NoError(t, err)

	snap, err := s.Deserialize(data)
	require.NoError(t, err)

	assert.Equal(t, models.CurrentSnapshotFormat, snap.FormatVersion)
	assert.Equal(t, fixedNow, snap.ExportedAt)
	assert.Equal(t, int64(7), snap.UserID)
	assert.Equal(t, 4, snap.RecordCount())

	require.Len(t, snap.Shifts, 2)
	assert.Equal(t, "s-1", snap.Shifts[0].ID)
	assert.Equal(t, "s-2", snap.Shifts[1].ID)
	assert.True(t, snap.Shifts[0].Deleted, "soft-deleted records survive the round trip")
	require.NotNil(t, snap.Shifts[0].DeletedAt)
	assert.True(t, snap.Shifts[0].DeletedAt.Equal(*shifts[1].DeletedAt))
	assert.Equal(t, shifts[0].Normalize(), snap.Shifts[1])

	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, expenses[0].Normalize(), snap.Expenses[0])

	require.NotNil(t, snap.Settings)
	assert.Equal(t, settings.Normalize(), *snap.Settings)
}

func TestSerialize_Deterministic(t *testing.T) {
	s := NewSerializer(WithClock(fixedClock))
	shifts, expenses, settings := sampleData()

	first, err := s.Serialize(7, shifts, expenses, settings)
	require.NoError(t, err)

	reversed := []models.Shift{shifts[1], shifts[0]}
	second, err := s.Serialize(7, reversed, expenses, settings)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestSerialize_DoesNotMutateInput(t *testing.T) {
	s := NewSerializer(WithClock(fixedClock))
	shifts, expenses, settings := sampleData()

	_, err := s.Serialize(7, shifts, expenses, settings)
	require.NoError(t, err)

	assert.Equal(t, "s-2", shifts[0].ID)
	assert.Equal(t, moscow, shifts[0].StartedAt.Location())
}

func TestSerialize_WritesUTC(t *testing.T) {
	s := NewSerializer(WithClock(func() time.Time { return fixedNow.In(moscow) }))
	shifts, _, _ := sampleData()

	data, err := s.Serialize(7, shifts[:1], nil, nil)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2026-03-14T09:26:53Z", raw["exportedAt"])

	shift := raw["shifts"].([]any)[0].(map[string]any)
	assert.Equal(t, "2026-03-10T05:00:00Z", shift["startedAt"])
}

func TestSerialize_EmptyDataset(t *testing.T) {
	s := NewSerializer(WithClock(fixedClock))

	data, err := s.Serialize(7, nil, nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"formatVersion":1,"exportedAt":"2026-03-14T09:26:53Z","userId":7,"shifts":[],"expenses":[],"settings":null}`,
		string(data))

	snap, err := s.Deserialize(data)
	require.NoError(t, err)
	assert.Zero(t, snap.RecordCount())
	assert.Nil(t, snap.Settings)
}

func TestDeserialize_UnsupportedFormat(t *testing.T) {
	s := NewSerializer()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "whitespace", data: "  \n"},
		{name: "not json", data: "definitely not json"},
		{name: "truncated", data: `{"formatVersion":1,"shifts":[`},
		{name: "missing version", data: `{"userId":7,"shifts":[]}`},
		{name: "future version", data: `{"formatVersion":2,"userId":7}`},
		{name: "zero version", data: `{"formatVersion":0}`},
		{name: "version of wrong type", data: `{"formatVersion":"1"}`},
		{name: "array document", data: `[1,2,3]`},
		{name: "bad field type", data: `{"formatVersion":1,"shifts":[{"id":5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Deserialize([]byte(tt.data))
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestDeserialize_IgnoresUnknownFields(t *testing.T) {
	s := NewSerializer()

	snap, err := s.Deserialize([]byte(`{"formatVersion":1,"userId":3,"device":"phone","shifts":[{"id":"a","extra":true}]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), snap.UserID)
	require.Len(t, snap.Shifts, 1)
	assert.Equal(t, "a", snap.Shifts[0].ID)
}

func TestDeserialize_NormalizesToUTC(t *testing.T) {
	s := NewSerializer()

	snap, err := s.Deserialize([]byte(`{"formatVersion":1,"exportedAt":"2026-03-14T12:00:00+03:00",
		"shifts":[{"id":"a","updatedAt":"2026-03-14T12:00:00+03:00","startedAt":"2026-03-14T12:00:00+03:00"}]}`))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, snap.ExportedAt.Location())
	assert.Equal(t, 9, snap.ExportedAt.Hour())
	assert.Equal(t, time.UTC, snap.Shifts[0].UpdatedAt.Location())
	assert.Equal(t, 9, snap.Shifts[0].StartedAt.Hour())
}

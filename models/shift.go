package models

import "time"

// Shift is a single work shift tracked by the user.
type Shift struct {
	RecordMeta

	// StartedAt is the moment the shift began.
	StartedAt time.Time `json:"startedAt"`

	// EndedAt is the moment the shift ended; nil while the shift is running.
	EndedAt *time.Time `json:"endedAt,omitempty"`

	// HourlyRateCents is the pay rate for the shift in minor currency units.
	HourlyRateCents int64 `json:"hourlyRateCents"`

	// Location is an optional free-form workplace label.
	Location string `json:"location,omitempty"`

	// Notes is an optional user note.
	Notes string `json:"notes,omitempty"`
}

// Normalize returns a copy of s with every timestamp converted to UTC.
func (s Shift) Normalize() Shift {
	s.RecordMeta = s.RecordMeta.normalize()
	s.StartedAt = s.StartedAt.UTC()
	s.EndedAt = utcPtr(s.EndedAt)
	return s
}

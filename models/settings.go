package models

// UserSettings holds per-user preferences. A user has at most one settings
// record; its ID is stable for the lifetime of the account.
type UserSettings struct {
	RecordMeta

	// Currency is the default ISO 4217 code for new expenses.
	Currency string `json:"currency"`

	// DefaultHourlyRateCents prefills the rate of new shifts.
	DefaultHourlyRateCents int64 `json:"defaultHourlyRateCents"`

	// WeekStartsOn is the first day of the week in reports (0 = Sunday).
	WeekStartsOn int `json:"weekStartsOn"`

	// Theme is the UI theme name.
	Theme string `json:"theme,omitempty"`
}

// Normalize returns a copy of s with every timestamp converted to UTC.
func (s UserSettings) Normalize() UserSettings {
	s.RecordMeta = s.RecordMeta.normalize()
	return s
}

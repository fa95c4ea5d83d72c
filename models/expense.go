package models

import "time"

// Expense is a single expense entry, optionally linked to a shift.
type Expense struct {
	RecordMeta

	// ShiftID links the expense to a shift; nil for standalone expenses.
	ShiftID *string `json:"shiftId,omitempty"`

	// AmountCents is the expense amount in minor currency units.
	AmountCents int64 `json:"amountCents"`

	// Currency is the ISO 4217 code of the amount.
	Currency string `json:"currency"`

	// Category groups expenses in reports (fuel, food, tools, ...).
	Category string `json:"category,omitempty"`

	// Description is an optional user note.
	Description string `json:"description,omitempty"`

	// IncurredAt is the moment the expense happened.
	IncurredAt time.Time `json:"incurredAt"`
}

// Normalize returns a copy of e with every timestamp converted to UTC.
func (e Expense) Normalize() Expense {
	e.RecordMeta = e.RecordMeta.normalize()
	e.IncurredAt = e.IncurredAt.UTC()
	return e
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CurrentSnapshotFormat is the snapshot layout written by this version.
const CurrentSnapshotFormat = 1

// Snapshot is the versioned aggregate of a user's whole dataset, as written
// to a backup file. Soft-deleted records are part of the snapshot so that the
// recycle bin survives a restore.
type Snapshot struct {
	// FormatVersion identifies the layout of the snapshot.
	FormatVersion int `json:"formatVersion"`

	// ExportedAt is the moment the snapshot was produced.
	ExportedAt time.Time `json:"exportedAt"`

	// UserID is the owner of the exported data.
	UserID int64 `json:"userId"`

	// Shifts holds every shift of the user, deleted ones included.
	Shifts []Shift `json:"shifts"`

	// Expenses holds every expense of the user, deleted ones included.
	Expenses []Expense `json:"expenses"`

	// Settings holds the user's settings; nil if the user never saved any.
	Settings *UserSettings `json:"settings"`
}

// RecordCount returns the number of records carried by the snapshot.
func (s Snapshot) RecordCount() int {
	n := len(s.Shifts) + len(s.Expenses)
	if s.Settings != nil {
		n++
	}
	return n
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is the common shape shared by every entity that takes part in a
// backup: a stable identifier and the timestamp of its last modification.
// Restore resolves conflicts between a live record and a snapshot record with
// the same ID by comparing LastUpdatedAt.
type Record interface {
	// RecordID returns the stable identifier of the record.
	RecordID() string

	// LastUpdatedAt returns the last-modification timestamp used for
	// last-writer-wins merging.
	LastUpdatedAt() time.Time
}

// RecordMeta holds the bookkeeping fields carried by every record.
type RecordMeta struct {
	// ID is the client-generated identifier of the record (UUID).
	ID string `json:"id"`

	// UserID is the owner of the record.
	UserID int64 `json:"userId"`

	// Deleted marks the record as moved to the recycle bin.
	Deleted bool `json:"deleted"`

	// DeletedAt is the moment the record was soft-deleted.
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// CreatedAt is the moment the record was first stored.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the moment of the last modification, soft deletion included.
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID implements [Record].
func (m RecordMeta) RecordID() string { return m.ID }

// LastUpdatedAt implements [Record].
func (m RecordMeta) LastUpdatedAt() time.Time { return m.UpdatedAt }

// normalize converts every timestamp to UTC so that encoded records compare
// equal regardless of the location they were produced in.
func (m RecordMeta) normalize() RecordMeta {
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	m.DeletedAt = utcPtr(m.DeletedAt)
	return m
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

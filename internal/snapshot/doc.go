// Package snapshot converts a user's dataset to and from the versioned JSON
// document stored in backup files.
//
// The encoding is deterministic for a given dataset and clock: records are
// ordered by ID and every timestamp is written in UTC, so two exports of the
// same data differ only in exportedAt.
package snapshot

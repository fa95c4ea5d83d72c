package service

import (
	"context"

	"github.com/MKhiriev/go-shift-keeper/models"
)

// BackupEngine creates encrypted snapshots of a user's data and merges them
// back. One engine serves one user; at most one backup and one restore run
// at a time, further calls fail with [KindBusy].
type BackupEngine interface {
	// CreateBackup collects every record of the user (soft-deleted ones
	// included), serializes and encrypts them, and writes a new backup file.
	// It returns the path of the file.
	CreateBackup(ctx context.Context) (string, error)

	// RestoreBackup merges the backup at path into the live store with
	// last-writer-wins semantics and returns the number of records inserted
	// or updated. Restoring the same file twice returns 0 the second time.
	// Legacy plaintext backups are accepted.
	RestoreBackup(ctx context.Context, path string) (int, error)

	// GetAvailableBackups lists backup files, newest first, without
	// decrypting them.
	GetAvailableBackups(ctx context.Context) ([]string, error)

	// State returns the current state of the given operation.
	State(op models.BackupOperation) models.BackupState
}

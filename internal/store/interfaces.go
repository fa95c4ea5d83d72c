package store

import (
	"context"

	"github.com/MKhiriev/go-shift-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the data-access contract the backup engine relies on
// for one kind of record.
type RecordRepository[T models.Record] interface {
	// ListAll returns every record owned by userID. Soft-deleted records are
	// included only when includeDeleted is set.
	ListAll(ctx context.Context, userID int64, includeDeleted bool) ([]T, error)

	// Upsert inserts record, or overwrites the stored record with the same
	// ID if and only if the stored one has an older UpdatedAt. It returns the
	// record as stored after the statement, which is the input itself when
	// the write was applied.
	Upsert(ctx context.Context, record T) (T, error)
}

// ShiftRepository stores shifts.
type ShiftRepository = RecordRepository[models.Shift]

// ExpenseRepository stores expenses.
type ExpenseRepository = RecordRepository[models.Expense]

// SettingsRepository stores per-user settings.
type SettingsRepository = RecordRepository[models.UserSettings]

// BackupFileStorage manages the files of the dedicated backup directory.
type BackupFileStorage interface {
	// WriteAtomic stores data as a new timestamped backup file and returns
	// its path. The file appears complete or not at all.
	WriteAtomic(ctx context.Context, data []byte) (string, error)

	// Read returns the content of the backup file at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// List returns the paths of all backup files, newest first.
	List(ctx context.Context) ([]string, error)
}

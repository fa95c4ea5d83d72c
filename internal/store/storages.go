package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shift-keeper/internal/config"
	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

// Storages groups the repositories and the backup file storage used by the
// backup engine.
type Storages struct {
	ShiftRepository    ShiftRepository
	ExpenseRepository  ExpenseRepository
	SettingsRepository SettingsRepository
	BackupFiles        BackupFileStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the live store named by cfg.DB.DSN (SQLite path or PostgreSQL URL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories and the backup directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, cfg.Files.BackupDir, logger), nil
}

func newStorages(db *DB, backupDir string, logger *logger.Logger) *Storages {
	return &Storages{
		ShiftRepository:    NewShiftRepository(db, logger),
		ExpenseRepository:  NewExpenseRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		BackupFiles:        NewBackupFileStorage(backupDir, logger),
		db:                 db,
	}
}

// IsRetryable reports whether err is a transient database failure.
func (s *Storages) IsRetryable(err error) bool {
	if s.db == nil {
		return false
	}
	return s.db.IsRetryable(err)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

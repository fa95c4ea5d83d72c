package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

func TestDialectFromDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		want    Dialect
		wantErr bool
	}{
		{dsn: "shift-keeper.db", want: DialectSQLite},
		{dsn: "/var/lib/app/data.db", want: DialectSQLite},
		{dsn: "file:data.db?_busy_timeout=5000", want: DialectSQLite},
		{dsn: ":memory:", want: DialectSQLite},
		{dsn: "postgres://u:p@localhost:5432/shifts", want: DialectPostgres},
		{dsn: "PostgreSQL://u@db/shifts?sslmode=disable", want: DialectPostgres},
		{dsn: "mysql://u@db/shifts", wantErr: true},
		{dsn: "", wantErr: true},
		{dsn: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := DialectFromDSN(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLiteFilePath(t *testing.T) {
	assert.Equal(t, "data.db", sqliteFilePath("file:data.db?cache=shared"))
	assert.Equal(t, "data.db", sqliteFilePath("data.db"))
	assert.Empty(t, sqliteFilePath(":memory:"))
	assert.Empty(t, sqliteFilePath("file::memory:?cache=shared"))
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "app.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	assert.FileExists(t, path)

	// second call is a no-op
	require.NoError(t, createLocalDBFileIfNotExists(path))
	require.NoError(t, createLocalDBFileIfNotExists(":memory:"))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: Retryable},
		{name: "deadline", err: context.DeadlineExceeded, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "lock not available", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "wrapped deadlock", err: fmt.Errorf("%w: %w", ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}

	assert.Equal(t, NonRetryable, ClassifyPgError(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("%w: %w", ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, Retryable, c.Classify(driver.ErrBadConn))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestDB_IsRetryable(t *testing.T) {
	db, _ := newTestDB(t)

	assert.True(t, newDBFromSQL(db).IsRetryable(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.False(t, (&DB{}).IsRetryable(driver.ErrBadConn))
	assert.Equal(t, DialectSQLite, newDBFromSQL(db).Dialect())
}

func TestStorages_WiresRepositories(t *testing.T) {
	db, _ := newTestDB(t)

	s := newStorages(newDBFromSQL(db), t.TempDir(), logger.Nop())
	assert.NotNil(t, s.ShiftRepository)
	assert.NotNil(t, s.ExpenseRepository)
	assert.NotNil(t, s.SettingsRepository)
	assert.NotNil(t, s.BackupFiles)
	assert.True(t, s.IsRetryable(sqlite3.Error{Code: sqlite3.ErrLocked}))

	assert.False(t, (&Storages{}).IsRetryable(driver.ErrBadConn))
	assert.NoError(t, (&Storages{}).Close())
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/MKhiriev/go-shift-keeper/models"
)

// recordRepository is the SQL implementation of [RecordRepository]. The
// three record kinds differ only in their table, columns and row mapping.
type recordRepository[T models.Record] struct {
	*DB
	logger *logger.Logger

	name    string
	table   string
	columns []string
	values  func(T) []any
	scan    func(rowScanner) (T, error)
	userOf  func(T) int64
}

// NewShiftRepository returns the [ShiftRepository] backed by db.
func NewShiftRepository(db *DB, logger *logger.Logger) ShiftRepository {
	return &recordRepository[models.Shift]{
		DB:      db,
		logger:  logger,
		name:    "shiftRepository",
		table:   tableShifts,
		columns: shiftColumns,
		values:  shiftValues,
		scan:    scanShift,
		userOf:  func(s models.Shift) int64 { return s.UserID },
	}
}

// NewExpenseRepository returns the [ExpenseRepository] backed by db.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	return &recordRepository[models.Expense]{
		DB:      db,
		logger:  logger,
		name:    "expenseRepository",
		table:   tableExpenses,
		columns: expenseColumns,
		values:  expenseValues,
		scan:    scanExpense,
		userOf:  func(e models.Expense) int64 { return e.UserID },
	}
}

// NewSettingsRepository returns the [SettingsRepository] backed by db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &recordRepository[models.UserSettings]{
		DB:      db,
		logger:  logger,
		name:    "settingsRepository",
		table:   tableUserSettings,
		columns: settingsColumns,
		values:  settingsValues,
		scan:    scanSettings,
		userOf:  func(s models.UserSettings) int64 { return s.UserID },
	}
}

func (r *recordRepository[T]) ListAll(ctx context.Context, userID int64, includeDeleted bool) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(r.builder, r.table, r.columns, userID, includeDeleted)
	if err != nil {
		log.Err(err).
			Str("func", r.name+".ListAll").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", r.name+".ListAll").
			Int64("user_id", userID).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0, 32)
	for rows.Next() {
		record, scanErr := r.scan(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", r.name+".ListAll").
				Int64("user_id", userID).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", r.name+".ListAll").
			Int64("user_id", userID).
			Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Upsert runs the conditional upsert and reads the row back in one
// transaction, so the returned record is exactly what the statement left
// behind.
func (r *recordRepository[T]) Upsert(ctx context.Context, record T) (T, error) {
	var zero T
	log := logger.FromContext(ctx)
	userID := r.userOf(record)

	upsertQuery, upsertArgs, err := buildUpsertQuery(r.builder, r.table, r.columns, r.values(record))
	if err != nil {
		log.Err(err).Str("func", r.name+".Upsert").Msg("failed to create upsert query")
		return zero, err
	}
	getQuery, getArgs, err := buildGetQuery(r.builder, r.table, r.columns, userID, record.RecordID())
	if err != nil {
		log.Err(err).Str("func", r.name+".Upsert").Msg("failed to create select query")
		return zero, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", r.name+".Upsert").Msg("error during opening transaction")
		return zero, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		log.Err(err).
			Str("func", r.name+".Upsert").
			Int64("user_id", userID).
			Str("id", record.RecordID()).
			Msg("failed to execute upsert")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stored, err := r.scan(tx.QueryRowContext(ctx, getQuery, getArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().
				Str("func", r.name+".Upsert").
				Int64("user_id", userID).
				Str("id", record.RecordID()).
				Msg("record is missing right after upsert")
			return zero, ErrRecordNotStored
		}
		log.Err(err).
			Str("func", r.name+".Upsert").
			Int64("user_id", userID).
			Str("id", record.RecordID()).
			Msg("failed to read record back")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", r.name+".Upsert").Msg("failed to commit transaction")
		return zero, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", r.name+".Upsert").
		Int64("user_id", userID).
		Str("id", record.RecordID()).
		Bool("applied", stored.LastUpdatedAt().Equal(record.LastUpdatedAt())).
		Msg("record upserted")

	return stored, nil
}

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shift-keeper/models"
)

const (
	tableShifts       = "shifts"
	tableExpenses     = "expenses"
	tableUserSettings = "user_settings"
)

// Column order is shared by SELECT lists, INSERT lists and row scanners.
var (
	metaColumns = []string{"id", "user_id", "deleted", "deleted_at", "created_at", "updated_at"}

	shiftColumns = append(append([]string{}, metaColumns...),
		"started_at", "ended_at", "hourly_rate_cents", "location", "notes")

	expenseColumns = append(append([]string{}, metaColumns...),
		"shift_id", "amount_cents", "currency", "category", "description", "incurred_at")

	settingsColumns = append(append([]string{}, metaColumns...),
		"currency", "default_hourly_rate_cents", "week_starts_on", "theme")
)

// buildListQuery selects every record of userID from table, ordered by ID.
func buildListQuery(b sq.StatementBuilderType, table string, columns []string, userID int64, includeDeleted bool) (string, []any, error) {
	where := sq.Eq{"user_id": userID}
	if !includeDeleted {
		where["deleted"] = false
	}

	query, args, err := b.Select(columns...).
		From(table).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetQuery selects a single record by its key.
func buildGetQuery(b sq.StatementBuilderType, table string, columns []string, userID int64, id string) (string, []any, error) {
	query, args, err := b.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertQuery inserts a row or overwrites the row with the same key, but
// only when the stored row is strictly older than the incoming one. The
// comparison happens inside the statement, so a concurrent writer that got
// there first with a newer timestamp is never overwritten.
func buildUpsertQuery(b sq.StatementBuilderType, table string, columns []string, values []any) (string, []any, error) {
	updates := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "id" || c == "user_id" || c == "created_at" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	suffix := fmt.Sprintf("ON CONFLICT (user_id, id) DO UPDATE SET %s WHERE %s.updated_at < excluded.updated_at",
		strings.Join(updates, ", "), table)

	query, args, err := b.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func metaValues(m models.RecordMeta) []any {
	return []any{m.ID, m.UserID, m.Deleted, nullableNanos(m.DeletedAt), toNanos(m.CreatedAt), toNanos(m.UpdatedAt)}
}

func shiftValues(s models.Shift) []any {
	return append(metaValues(s.RecordMeta),
		toNanos(s.StartedAt), nullableNanos(s.EndedAt), s.HourlyRateCents, s.Location, s.Notes)
}

func expenseValues(e models.Expense) []any {
	var shiftID sql.NullString
	if e.ShiftID != nil {
		shiftID = sql.NullString{String: *e.ShiftID, Valid: true}
	}
	return append(metaValues(e.RecordMeta),
		shiftID, e.AmountCents, e.Currency, e.Category, e.Description, toNanos(e.IncurredAt))
}

func settingsValues(s models.UserSettings) []any {
	return append(metaValues(s.RecordMeta),
		s.Currency, s.DefaultHourlyRateCents, s.WeekStartsOn, s.Theme)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// metaScan collects the raw column values of the shared columns.
type metaScan struct {
	deletedAt sql.NullInt64
	createdAt int64
	updatedAt int64
}

func (m *metaScan) targets(meta *models.RecordMeta) []any {
	return []any{&meta.ID, &meta.UserID, &meta.Deleted, &m.deletedAt, &m.createdAt, &m.updatedAt}
}

func (m *metaScan) apply(meta *models.RecordMeta) {
	meta.DeletedAt = fromNullableNanos(m.deletedAt)
	meta.CreatedAt = fromNanos(m.createdAt)
	meta.UpdatedAt = fromNanos(m.updatedAt)
}

func scanShift(row rowScanner) (models.Shift, error) {
	var (
		s         models.Shift
		meta      metaScan
		startedAt int64
		endedAt   sql.NullInt64
	)

	dest := append(meta.targets(&s.RecordMeta), &startedAt, &endedAt, &s.HourlyRateCents, &s.Location, &s.Notes)
	if err := row.Scan(dest...); err != nil {
		return models.Shift{}, err
	}

	meta.apply(&s.RecordMeta)
	s.StartedAt = fromNanos(startedAt)
	s.EndedAt = fromNullableNanos(endedAt)
	return s, nil
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		e          models.Expense
		meta       metaScan
		shiftID    sql.NullString
		incurredAt int64
	)

	dest := append(meta.targets(&e.RecordMeta), &shiftID, &e.AmountCents, &e.Currency, &e.Category, &e.Description, &incurredAt)
	if err := row.Scan(dest...); err != nil {
		return models.Expense{}, err
	}

	meta.apply(&e.RecordMeta)
	if shiftID.Valid {
		e.ShiftID = &shiftID.String
	}
	e.IncurredAt = fromNanos(incurredAt)
	return e, nil
}

func scanSettings(row rowScanner) (models.UserSettings, error) {
	var (
		s    models.UserSettings
		meta metaScan
	)

	dest := append(meta.targets(&s.RecordMeta), &s.Currency, &s.DefaultHourlyRateCents, &s.WeekStartsOn, &s.Theme)
	if err := row.Scan(dest...); err != nil {
		return models.UserSettings{}, err
	}

	meta.apply(&s.RecordMeta)
	return s, nil
}

// Timestamps are stored as Unix nanoseconds so that SQLite and PostgreSQL
// compare them identically and no precision is lost. The zero time maps to 0.

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

func nullableNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toNanos(*t), Valid: true}
}

func fromNullableNanos(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromNanos(n.Int64)
	return &t
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
	"github.com/MKhiriev/go-shift-keeper/internal/store"
	"github.com/MKhiriev/go-shift-keeper/models"
)

// merge applies every record of snap to the live store and returns how many
// were inserted or updated. It stops at the first failure; records applied
// before it stay applied, which is harmless because merging is idempotent.
func (e *backupEngine) merge(ctx context.Context, snap models.Snapshot) (int, error) {
	total := 0

	n, err := mergeRecords(ctx, e.shifts, e.userID, snap.Shifts, func(s models.Shift) models.Shift {
		s.UserID = e.userID
		return s
	})
	total += n
	if err != nil {
		return total, fmt.Errorf("merge shifts: %w", err)
	}

	n, err = mergeRecords(ctx, e.expenses, e.userID, snap.Expenses, func(x models.Expense) models.Expense {
		x.UserID = e.userID
		return x
	})
	total += n
	if err != nil {
		return total, fmt.Errorf("merge expenses: %w", err)
	}

	if snap.Settings != nil {
		live, err := e.settings.ListAll(ctx, e.userID, true)
		if err != nil {
			return total, fmt.Errorf("merge settings: %w", err)
		}
		// a user has one settings record; the snapshot's takes the live one's ID
		current := latestSettings(live)

		n, err = mergeRecords(ctx, e.settings, e.userID, []models.UserSettings{*snap.Settings}, func(s models.UserSettings) models.UserSettings {
			s.UserID = e.userID
			if current != nil {
				s.ID = current.ID
			}
			return s
		})
		total += n
		if err != nil {
			return total, fmt.Errorf("merge settings: %w", err)
		}
	}

	return total, nil
}

// mergeRecords is strict last-writer-wins per record: a snapshot record is
// written only when the live store has no record with its ID or holds an
// older one. The live timestamps read up front only let us skip records that
// are already current; the decision that counts is made by the conditional
// upsert, so a record modified concurrently after the read is never
// overwritten with older data. A record counts as applied only when the row
// left behind carries the snapshot's timestamp.
func mergeRecords[T models.Record](
	ctx context.Context,
	repo store.RecordRepository[T],
	userID int64,
	records []T,
	assign func(T) T,
) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	live, err := repo.ListAll(ctx, userID, true)
	if err != nil {
		return 0, err
	}
	liveUpdatedAt := make(map[string]time.Time, len(live))
	for _, rec := range live {
		liveUpdatedAt[rec.RecordID()] = rec.LastUpdatedAt()
	}

	applied := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		rec = assign(rec)
		if current, ok := liveUpdatedAt[rec.RecordID()]; ok && !current.Before(rec.LastUpdatedAt()) {
			continue
		}

		stored, err := repo.Upsert(ctx, rec)
		if err != nil {
			return applied, err
		}

		if !stored.LastUpdatedAt().Equal(rec.LastUpdatedAt()) {
			log.Debug().
				Str("func", "mergeRecords").
				Str("id", rec.RecordID()).
				Msg("record changed concurrently, kept the newer version")
			continue
		}
		applied++
	}

	return applied, nil
}

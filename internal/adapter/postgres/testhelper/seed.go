package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// SeedRecord inserts a review record for a fresh owner and item. A positive
// intervalDays makes it a taken record whose last attempt was at takenAt.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, takenAt time.Time, intervalDays int) domain.ReviewRecord {
	t.Helper()
	return SeedOwnerRecord(t, pool, uuid.New(), takenAt, intervalDays)
}

// SeedOwnerRecord is SeedRecord for a given owner.
func SeedOwnerRecord(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, takenAt time.Time, intervalDays int) domain.ReviewRecord {
	t.Helper()

	rec := domain.NewReviewRecord(uuid.New(), ownerID)
	if !takenAt.IsZero() {
		rec = rec.Advance(takenAt, intervalDays)
	}
	rec.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_records
		   (owner_id, item_id, last_taken_at, next_review_at, interval_days, attempt_count, revision, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.OwnerID, rec.ItemID, rec.LastTakenAt, rec.NextReviewAt,
		rec.IntervalDays, rec.AttemptCount, rec.Revision, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}

// RecordExists reports whether a review_records row exists for key.
func RecordExists(t *testing.T, pool *pgxpool.Pool, key domain.ItemKey) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM review_records WHERE owner_id = $1 AND item_id = $2)`,
		key.OwnerID, key.ItemID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: RecordExists query: %v", err)
	}
	return exists
}

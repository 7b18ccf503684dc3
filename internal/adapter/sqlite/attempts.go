package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

var attemptColumns = []string{
	"id", "owner_id", "item_id", "score", "submitted_at",
	"revision", "interval_days", "next_review_at", "recorded_at",
}

type attemptRow struct {
	ID           uuid.UUID `db:"id"`
	OwnerID      uuid.UUID `db:"owner_id"`
	ItemID       uuid.UUID `db:"item_id"`
	Score        float64   `db:"score"`
	SubmittedAt  int64     `db:"submitted_at"`
	Revision     int64     `db:"revision"`
	IntervalDays int       `db:"interval_days"`
	NextReviewAt int64     `db:"next_review_at"`
	RecordedAt   int64     `db:"recorded_at"`
}

// AttemptLog is the append-only attempt log stored in SQLite.
type AttemptLog struct {
	db  Querier
	now func() time.Time
}

// NewAttemptLog creates an attempt log over db.
func NewAttemptLog(db *sqlx.DB) *AttemptLog {
	return &AttemptLog{db: db, now: time.Now}
}

// Append inserts a log entry. A second entry for the same revision of an item
// fails with domain.ErrAlreadyExists.
func (l *AttemptLog) Append(ctx context.Context, a domain.Attempt) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = l.now()
	}

	query, args, err := builder().
		Insert("attempt_log").
		Columns(attemptColumns...).
		Values(a.ID, a.OwnerID, a.ItemID, a.Score, toMicros(a.SubmittedAt),
			a.Revision, a.IntervalDays, toMicros(a.NextReviewAt), toMicros(a.RecordedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append attempt: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, l.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "attempt", a.ItemID)
	}
	return nil
}

// ListByItem returns up to limit entries for key, newest revision first.
func (l *AttemptLog) ListByItem(ctx context.Context, key domain.ItemKey, limit int) ([]domain.Attempt, error) {
	if limit <= 0 {
		return []domain.Attempt{}, nil
	}

	query, args, err := builder().
		Select(attemptColumns...).
		From("attempt_log").
		Where(recordKey(key)).
		OrderBy("revision DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attempts: %w", err)
	}

	var rows []attemptRow
	if err := sqlx.SelectContext(ctx, QuerierFromCtx(ctx, l.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "attempts of item", key.ItemID)
	}

	out := make([]domain.Attempt, len(rows))
	for i, r := range rows {
		out[i] = domain.Attempt{
			ID:           r.ID,
			ItemID:       r.ItemID,
			OwnerID:      r.OwnerID,
			Score:        r.Score,
			SubmittedAt:  fromMicros(r.SubmittedAt),
			Revision:     r.Revision,
			IntervalDays: r.IntervalDays,
			NextReviewAt: fromMicros(r.NextReviewAt),
			RecordedAt:   fromMicros(r.RecordedAt),
		}
	}
	return out, nil
}

// DeleteByItem drops all log entries of key.
func (l *AttemptLog) DeleteByItem(ctx context.Context, key domain.ItemKey) error {
	query, args, err := builder().
		Delete("attempt_log").
		Where(recordKey(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete attempts: %w", err)
	}

	if _, err := QuerierFromCtx(ctx, l.db).ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "attempts of item", key.ItemID)
	}
	return nil
}

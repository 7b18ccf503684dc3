// Package attemptlog implements the append-only attempt log using PostgreSQL.
package attemptlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/review-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const table = "attempt_log"

var columns = []string{
	"id", "owner_id", "item_id", "score", "submitted_at",
	"revision", "interval_days", "next_review_at", "recorded_at",
}

type row struct {
	ID           uuid.UUID `db:"id"`
	OwnerID      uuid.UUID `db:"owner_id"`
	ItemID       uuid.UUID `db:"item_id"`
	Score        float64   `db:"score"`
	SubmittedAt  time.Time `db:"submitted_at"`
	Revision     int64     `db:"revision"`
	IntervalDays int       `db:"interval_days"`
	NextReviewAt time.Time `db:"next_review_at"`
	RecordedAt   time.Time `db:"recorded_at"`
}

func (r row) toDomain() domain.Attempt {
	return domain.Attempt{
		ID:           r.ID,
		ItemID:       r.ItemID,
		OwnerID:      r.OwnerID,
		Score:        r.Score,
		SubmittedAt:  r.SubmittedAt.UTC(),
		Revision:     r.Revision,
		IntervalDays: r.IntervalDays,
		NextReviewAt: r.NextReviewAt.UTC(),
		RecordedAt:   r.RecordedAt.UTC(),
	}
}

// Repo provides attempt log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attempt log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func keyPredicate(key domain.ItemKey) sq.And {
	return sq.And{sq.Eq{"owner_id": key.OwnerID}, sq.Eq{"item_id": key.ItemID}}
}

// Append inserts a log entry. A second entry for the same revision of an item
// fails with domain.ErrAlreadyExists.
func (r *Repo) Append(ctx context.Context, a domain.Attempt) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	recordedAt := any(sq.Expr("now()"))
	if !a.RecordedAt.IsZero() {
		recordedAt = a.RecordedAt
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.OwnerID, a.ItemID, a.Score, a.SubmittedAt,
			a.Revision, a.IntervalDays, a.NextReviewAt, recordedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append attempt: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "attempt", a.ItemID)
	}
	return nil
}

// ListByItem returns up to limit entries for key, newest revision first.
func (r *Repo) ListByItem(ctx context.Context, key domain.ItemKey, limit int) ([]domain.Attempt, error) {
	if limit <= 0 {
		return []domain.Attempt{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(keyPredicate(key)).
		OrderBy("revision DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attempts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "attempts of item", key.ItemID)
	}

	out := make([]domain.Attempt, len(rows))
	for i, rr := range rows {
		out[i] = rr.toDomain()
	}
	return out, nil
}

// DeleteByItem drops all log entries of key. Deleting nothing is not an error.
func (r *Repo) DeleteByItem(ctx context.Context, key domain.ItemKey) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(keyPredicate(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete attempts: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "attempts of item", key.ItemID)
	}
	return nil
}

// Package reviewrecord implements the review record store using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package reviewrecord

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/review-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const (
	table = "review_records"

	// listPageSize is the keyset page used when scanning an owner's records.
	listPageSize = 500
)

var columns = []string{
	"owner_id", "item_id", "last_taken_at", "next_review_at",
	"interval_days", "attempt_count", "revision", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// upsertFirstCommit overwrites a registered, never-committed row, so revision 0
// matches both a missing row and a freshly registered one.
var upsertFirstCommit = "ON CONFLICT (owner_id, item_id) DO UPDATE SET " +
	"last_taken_at = EXCLUDED.last_taken_at, next_review_at = EXCLUDED.next_review_at, " +
	"interval_days = EXCLUDED.interval_days, attempt_count = EXCLUDED.attempt_count, " +
	"revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at " +
	"WHERE review_records.revision = 0 " + returning

// row mirrors one review_records row.
type row struct {
	OwnerID      uuid.UUID  `db:"owner_id"`
	ItemID       uuid.UUID  `db:"item_id"`
	LastTakenAt  *time.Time `db:"last_taken_at"`
	NextReviewAt *time.Time `db:"next_review_at"`
	IntervalDays int        `db:"interval_days"`
	AttemptCount int        `db:"attempt_count"`
	Revision     int64      `db:"revision"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// toDomain converts a row and checks the record invariants, so a row that
// was edited behind the scheduler's back surfaces as ErrInvariantViolation.
func (r row) toDomain() (domain.ReviewRecord, error) {
	rec := domain.ReviewRecord{
		ItemID:       r.ItemID,
		OwnerID:      r.OwnerID,
		LastTakenAt:  postgres.UTCPtr(r.LastTakenAt),
		NextReviewAt: postgres.UTCPtr(r.NextReviewAt),
		IntervalDays: r.IntervalDays,
		AttemptCount: r.AttemptCount,
		Revision:     r.Revision,
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if err := rec.Validate(); err != nil {
		return domain.ReviewRecord{}, err
	}
	return rec, nil
}

// Repo provides review record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func keyPredicate(key domain.ItemKey) sq.And {
	return sq.And{sq.Eq{"owner_id": key.OwnerID}, sq.Eq{"item_id": key.ItemID}}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the record for key. Returns domain.ErrNotFound if absent.
func (r *Repo) Get(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(keyPredicate(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review record: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "review record", key.ItemID)
	}

	rec, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetMany returns the records of ownerID among itemIDs (batch for DataLoader).
// Unknown items are skipped.
func (r *Repo) GetMany(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error) {
	if len(itemIDs) == 0 {
		return []domain.ReviewRecord{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"item_id": itemIDs}}).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review records: %w", err)
	}

	return r.selectRecords(ctx, query, args, ownerID)
}

// ListByOwner returns every record of ownerID ordered by item id. The table
// is read in keyset pages so large owners do not hold one long cursor.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewRecord, error) {
	var (
		out   []domain.ReviewRecord
		after uuid.UUID
	)
	for {
		query, args, err := postgres.Builder().
			Select(columns...).
			From(table).
			Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Gt{"item_id": after}}).
			OrderBy("item_id").
			Limit(listPageSize).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build list review records: %w", err)
		}

		page, err := r.selectRecords(ctx, query, args, ownerID)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)

		if len(page) < listPageSize {
			break
		}
		after = page[len(page)-1].ItemID
	}

	if out == nil {
		out = []domain.ReviewRecord{}
	}
	return out, nil
}

// ListOwners returns every owner that has at least one record.
func (r *Repo) ListOwners(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("owner_id").
		Distinct().
		From(table).
		OrderBy("owner_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list owners: %w", err)
	}

	var owners []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &owners, query, args...); err != nil {
		return nil, postgres.MapError(err, "review record owners", "all")
	}
	return owners, nil
}

func (r *Repo) selectRecords(ctx context.Context, query string, args []any, ownerID uuid.UUID) ([]domain.ReviewRecord, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "review records of owner", ownerID)
	}

	out := make([]domain.ReviewRecord, 0, len(rows))
	for _, rr := range rows {
		rec, err := rr.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CompareAndSwap writes next if the stored revision still equals expected.
// Expected revision 0 also matches a missing row, which is then inserted.
// Returns domain.ErrRevisionConflict when no row matched.
func (r *Repo) CompareAndSwap(ctx context.Context, next domain.ReviewRecord, expected int64) (*domain.ReviewRecord, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	var (
		query string
		args  []any
		err   error
	)
	if expected == 0 {
		query, args, err = postgres.Builder().
			Insert(table).
			Columns(columns...).
			Values(next.OwnerID, next.ItemID, next.LastTakenAt, next.NextReviewAt,
				next.IntervalDays, next.AttemptCount, next.Revision, sq.Expr("now()")).
			Suffix(upsertFirstCommit).
			ToSql()
	} else {
		query, args, err = postgres.Builder().
			Update(table).
			Set("last_taken_at", next.LastTakenAt).
			Set("next_review_at", next.NextReviewAt).
			Set("interval_days", next.IntervalDays).
			Set("attempt_count", next.AttemptCount).
			Set("revision", next.Revision).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.And{keyPredicate(next.Key()), sq.Eq{"revision": expected}}).
			Suffix(returning).
			ToSql()
	}
	if err != nil {
		return nil, fmt.Errorf("build compare-and-swap: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review record %s: expected revision %d: %w",
				next.ItemID, expected, domain.ErrRevisionConflict)
		}
		return nil, postgres.MapError(err, "review record", next.ItemID)
	}

	rec, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Register inserts the never-taken record rec. Returns domain.ErrAlreadyExists
// if the item already has a record.
func (r *Repo) Register(ctx context.Context, rec domain.ReviewRecord) (*domain.ReviewRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rec.OwnerID, rec.ItemID, rec.LastTakenAt, rec.NextReviewAt,
			rec.IntervalDays, rec.AttemptCount, rec.Revision, sq.Expr("now()")).
		Suffix("ON CONFLICT (owner_id, item_id) DO NOTHING " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build register review record: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("review record %s: %w", rec.ItemID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "review record", rec.ItemID)
	}

	out, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the record for key. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, key domain.ItemKey) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(keyPredicate(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete review record: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "review record", key.ItemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrNotFound)
	}
	return nil
}

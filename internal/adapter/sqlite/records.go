package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const recordsTable = "review_records"

var recordColumns = []string{
	"owner_id", "item_id", "last_taken_at", "next_review_at",
	"interval_days", "attempt_count", "revision", "updated_at",
}

var recordInsertColumns = append(append([]string{}, recordColumns...), "created_at")

var recordReturning = "RETURNING " + strings.Join(recordColumns, ", ")

var upsertFirstCommit = "ON CONFLICT (owner_id, item_id) DO UPDATE SET " +
	"last_taken_at = excluded.last_taken_at, next_review_at = excluded.next_review_at, " +
	"interval_days = excluded.interval_days, attempt_count = excluded.attempt_count, " +
	"revision = excluded.revision, updated_at = excluded.updated_at " +
	"WHERE review_records.revision = 0 " + recordReturning

type recordRow struct {
	OwnerID      uuid.UUID `db:"owner_id"`
	ItemID       uuid.UUID `db:"item_id"`
	LastTakenAt  *int64    `db:"last_taken_at"`
	NextReviewAt *int64    `db:"next_review_at"`
	IntervalDays int       `db:"interval_days"`
	AttemptCount int       `db:"attempt_count"`
	Revision     int64     `db:"revision"`
	UpdatedAt    int64     `db:"updated_at"`
}

func (r recordRow) toDomain() (domain.ReviewRecord, error) {
	rec := domain.ReviewRecord{
		ItemID:       r.ItemID,
		OwnerID:      r.OwnerID,
		LastTakenAt:  fromMicrosPtr(r.LastTakenAt),
		NextReviewAt: fromMicrosPtr(r.NextReviewAt),
		IntervalDays: r.IntervalDays,
		AttemptCount: r.AttemptCount,
		Revision:     r.Revision,
		UpdatedAt:    fromMicros(r.UpdatedAt),
	}
	if err := rec.Validate(); err != nil {
		return domain.ReviewRecord{}, err
	}
	return rec, nil
}

// RecordStore persists review records in SQLite.
type RecordStore struct {
	db  Querier
	now func() time.Time
}

// NewRecordStore creates a record store over db.
func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db, now: time.Now}
}

// Ping checks that the database answers.
func (s *RecordStore) Ping(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "SELECT 1"); err != nil {
		return mapError(err, "sqlite", "ping")
	}
	return nil
}

func recordKey(key domain.ItemKey) sq.And {
	return sq.And{sq.Eq{"owner_id": key.OwnerID}, sq.Eq{"item_id": key.ItemID}}
}

// Get returns the record for key. Returns domain.ErrNotFound if absent.
func (s *RecordStore) Get(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, error) {
	query, args, err := builder().
		Select(recordColumns...).
		From(recordsTable).
		Where(recordKey(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review record: %w", err)
	}

	return s.getOne(ctx, "review record", key.ItemID, query, args)
}

// GetMany returns the records of ownerID among itemIDs. Unknown items are skipped.
func (s *RecordStore) GetMany(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error) {
	if len(itemIDs) == 0 {
		return []domain.ReviewRecord{}, nil
	}

	ids := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = id.String()
	}

	query, args, err := builder().
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"item_id": ids}}).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get review records: %w", err)
	}

	return s.selectMany(ctx, ownerID, query, args)
}

// ListByOwner returns every record of ownerID ordered by item id.
func (s *RecordStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewRecord, error) {
	query, args, err := builder().
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list review records: %w", err)
	}

	return s.selectMany(ctx, ownerID, query, args)
}

// ListOwners returns every owner that has at least one record.
func (s *RecordStore) ListOwners(ctx context.Context) ([]uuid.UUID, error) {
	var owners []uuid.UUID
	err := sqlx.SelectContext(ctx, QuerierFromCtx(ctx, s.db), &owners,
		"SELECT DISTINCT owner_id FROM review_records ORDER BY owner_id")
	if err != nil {
		return nil, mapError(err, "review record owners", "all")
	}
	return owners, nil
}

// CompareAndSwap writes next if the stored revision still equals expected.
// Expected revision 0 also matches a missing row, which is then inserted.
// Returns domain.ErrRevisionConflict when no row matched.
func (s *RecordStore) CompareAndSwap(ctx context.Context, next domain.ReviewRecord, expected int64) (*domain.ReviewRecord, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}
	now := toMicros(s.now())

	var (
		query string
		args  []any
		err   error
	)
	if expected == 0 {
		query, args, err = s.insert(next, now).Suffix(upsertFirstCommit).ToSql()
	} else {
		query, args, err = builder().
			Update(recordsTable).
			Set("last_taken_at", toMicrosPtr(next.LastTakenAt)).
			Set("next_review_at", toMicrosPtr(next.NextReviewAt)).
			Set("interval_days", next.IntervalDays).
			Set("attempt_count", next.AttemptCount).
			Set("revision", next.Revision).
			Set("updated_at", now).
			Where(sq.And{recordKey(next.Key()), sq.Eq{"revision": expected}}).
			Suffix(recordReturning).
			ToSql()
	}
	if err != nil {
		return nil, fmt.Errorf("build compare-and-swap: %w", err)
	}

	rec, err := s.getOne(ctx, "review record", next.ItemID, query, args)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("review record %s: expected revision %d: %w",
				next.ItemID, expected, domain.ErrRevisionConflict)
		}
		return nil, err
	}
	return rec, nil
}

// Register inserts the never-taken record rec. Returns domain.ErrAlreadyExists
// if the item already has a record.
func (s *RecordStore) Register(ctx context.Context, rec domain.ReviewRecord) (*domain.ReviewRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	query, args, err := s.insert(rec, toMicros(s.now())).
		Suffix("ON CONFLICT (owner_id, item_id) DO NOTHING " + recordReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build register review record: %w", err)
	}

	out, err := s.getOne(ctx, "review record", rec.ItemID, query, args)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("review record %s: %w", rec.ItemID, domain.ErrAlreadyExists)
		}
		return nil, err
	}
	return out, nil
}

// Delete removes the record for key. Returns domain.ErrNotFound if absent.
func (s *RecordStore) Delete(ctx context.Context, key domain.ItemKey) error {
	query, args, err := builder().
		Delete(recordsTable).
		Where(recordKey(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete review record: %w", err)
	}

	res, err := QuerierFromCtx(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, "review record", key.ItemID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, "review record", key.ItemID)
	}
	if n == 0 {
		return fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrNotFound)
	}
	return nil
}

func (s *RecordStore) insert(rec domain.ReviewRecord, now int64) sq.InsertBuilder {
	return builder().
		Insert(recordsTable).
		Columns(recordInsertColumns...).
		Values(rec.OwnerID, rec.ItemID, toMicrosPtr(rec.LastTakenAt), toMicrosPtr(rec.NextReviewAt),
			rec.IntervalDays, rec.AttemptCount, rec.Revision, now, now)
}

func (s *RecordStore) getOne(ctx context.Context, entity string, id uuid.UUID, query string, args []any) (*domain.ReviewRecord, error) {
	var row recordRow
	if err := sqlx.GetContext(ctx, QuerierFromCtx(ctx, s.db), &row, query, args...); err != nil {
		return nil, mapError(err, entity, id)
	}
	rec, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecordStore) selectMany(ctx context.Context, ownerID uuid.UUID, query string, args []any) ([]domain.ReviewRecord, error) {
	var rows []recordRow
	if err := sqlx.SelectContext(ctx, QuerierFromCtx(ctx, s.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "review records of owner", ownerID)
	}

	out := make([]domain.ReviewRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

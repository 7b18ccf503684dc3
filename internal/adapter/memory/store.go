// Package memory implements the record store and attempt log in process
// memory. It backs the "memory" database driver used for local runs and for
// scheduler tests that need real compare-and-swap semantics.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// Store keeps review records and attempt log entries in maps.
//
// Calls made with a context from TxManager.RunInTx are staged in that
// transaction and become visible to other callers only when it commits.
// Calls without one take effect immediately.
type Store struct {
	mu       sync.RWMutex
	records  map[domain.ItemKey]domain.ReviewRecord
	attempts map[domain.ItemKey][]domain.Attempt
	now      func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records:  make(map[domain.ItemKey]domain.ReviewRecord),
		attempts: make(map[domain.ItemKey][]domain.Attempt),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// lookup returns the record for key as seen by t (nil t reads committed
// state). Callers hold s.mu.
func (s *Store) lookup(t *tx, key domain.ItemKey) (domain.ReviewRecord, bool) {
	if t != nil {
		if st, ok := t.records[key]; ok {
			return st.rec, !st.deleted
		}
	}
	rec, ok := s.records[key]
	return rec, ok
}

// putRecord writes directly or stages the write in t. Callers hold s.mu.
func (s *Store) putRecord(t *tx, key domain.ItemKey, rec domain.ReviewRecord, deleted bool) {
	if t == nil {
		if deleted {
			delete(s.records, key)
		} else {
			s.records[key] = rec
		}
		return
	}
	t.observe(key, s.records)
	t.records[key] = stagedRecord{rec: rec, deleted: deleted}
}

// logEntries returns the attempt log of key as seen by t. Callers hold s.mu.
func (s *Store) logEntries(t *tx, key domain.ItemKey) []domain.Attempt {
	if t == nil {
		return s.attempts[key]
	}
	var out []domain.Attempt
	if !t.cleared[key] {
		out = append(out, s.attempts[key]...)
	}
	return append(out, t.appended[key]...)
}

// ---------------------------------------------------------------------------
// Review records
// ---------------------------------------------------------------------------

// Get returns the record for key or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.lookup(t, key)
	if !ok {
		return nil, fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrNotFound)
	}
	return &rec, nil
}

// GetMany returns the existing records of ownerID among itemIDs. Missing items
// are skipped.
func (s *Store) GetMany(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ReviewRecord, 0, len(itemIDs))
	for _, id := range itemIDs {
		if rec, ok := s.lookup(t, domain.ItemKey{ItemID: id, OwnerID: ownerID}); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// CompareAndSwap stores next if the stored revision still equals expected.
// A missing record counts as revision 0. It returns domain.ErrRevisionConflict
// when another writer got there first.
func (s *Store) CompareAndSwap(ctx context.Context, next domain.ReviewRecord, expected int64) (*domain.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := next.Key()
	var current int64
	if rec, ok := s.lookup(t, key); ok {
		current = rec.Revision
	}
	if current != expected {
		return nil, fmt.Errorf("review record %s: expected revision %d, found %d: %w",
			key.ItemID, expected, current, domain.ErrRevisionConflict)
	}

	next.UpdatedAt = s.now()
	s.putRecord(t, key, next, false)
	return &next, nil
}

// Register inserts a never-taken record. It returns domain.ErrAlreadyExists if
// any record exists for the key.
func (s *Store) Register(ctx context.Context, rec domain.ReviewRecord) (*domain.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := rec.Key()
	if _, ok := s.lookup(t, key); ok {
		return nil, fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrAlreadyExists)
	}
	rec.UpdatedAt = s.now()
	s.putRecord(t, key, rec, false)
	return &rec, nil
}

// Delete removes the record for key.
func (s *Store) Delete(ctx context.Context, key domain.ItemKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.txFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(t, key); !ok {
		return fmt.Errorf("review record %s: %w", key.ItemID, domain.ErrNotFound)
	}
	s.putRecord(t, key, domain.ReviewRecord{}, true)
	return nil
}

// visible calls fn for every record seen by t. Callers hold s.mu.
func (s *Store) visible(t *tx, fn func(domain.ReviewRecord)) {
	for key, rec := range s.records {
		if t != nil {
			if _, staged := t.records[key]; staged {
				continue
			}
		}
		fn(rec)
	}
	if t == nil {
		return
	}
	for _, st := range t.records {
		if !st.deleted {
			fn(st.rec)
		}
	}
}

// ListByOwner returns every record of ownerID ordered by item id.
func (s *Store) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	out := make([]domain.ReviewRecord, 0)
	s.mu.RLock()
	s.visible(t, func(rec domain.ReviewRecord) {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	})
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ItemID.String() < out[j].ItemID.String() })
	return out, nil
}

// ListOwners returns every owner that has at least one record.
func (s *Store) ListOwners(ctx context.Context) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	seen := make(map[uuid.UUID]struct{})
	s.mu.RLock()
	s.visible(t, func(rec domain.ReviewRecord) {
		seen[rec.OwnerID] = struct{}{}
	})
	s.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

// ---------------------------------------------------------------------------
// Attempt log
// ---------------------------------------------------------------------------

func hasRevision(entries []domain.Attempt, rev int64) bool {
	for _, e := range entries {
		if e.Revision == rev {
			return true
		}
	}
	return false
}

// Append adds an entry to the log. Entries are unique per (owner, item, revision).
func (s *Store) Append(ctx context.Context, a domain.Attempt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.txFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.ItemKey{ItemID: a.ItemID, OwnerID: a.OwnerID}
	if hasRevision(s.logEntries(t, key), a.Revision) {
		return fmt.Errorf("attempt %s rev %d: %w", a.ItemID, a.Revision, domain.ErrAlreadyExists)
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = s.now()
	}

	if t == nil {
		s.attempts[key] = append(s.attempts[key], a)
	} else {
		t.appended[key] = append(t.appended[key], a)
	}
	return nil
}

// ListByItem returns up to limit entries for key, newest revision first.
func (s *Store) ListByItem(ctx context.Context, key domain.ItemKey, limit int) ([]domain.Attempt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := s.txFrom(ctx)

	s.mu.RLock()
	entries := s.logEntries(t, key)
	out := make([]domain.Attempt, 0, min(len(entries), max(limit, 0)))
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Revision > out[j].Revision })
	return out, nil
}

// DeleteByItem drops all log entries of key.
func (s *Store) DeleteByItem(ctx context.Context, key domain.ItemKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := s.txFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if t == nil {
		delete(s.attempts, key)
		return nil
	}
	delete(t.appended, key)
	t.cleared[key] = true
	return nil
}

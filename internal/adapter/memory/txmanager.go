package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

type txKey struct{}

type stagedRecord struct {
	rec     domain.ReviewRecord
	deleted bool
}

// baseState is the committed state of a record when a transaction first
// wrote it. Commit fails if the record moved since.
type baseState struct {
	exists   bool
	revision int64
}

// tx holds the staged writes of one RunInTx call. It is used by one goroutine.
type tx struct {
	store    *Store
	base     map[domain.ItemKey]baseState
	records  map[domain.ItemKey]stagedRecord
	appended map[domain.ItemKey][]domain.Attempt
	cleared  map[domain.ItemKey]bool
}

func newTx(store *Store) *tx {
	return &tx{
		store:    store,
		base:     make(map[domain.ItemKey]baseState),
		records:  make(map[domain.ItemKey]stagedRecord),
		appended: make(map[domain.ItemKey][]domain.Attempt),
		cleared:  make(map[domain.ItemKey]bool),
	}
}

func (t *tx) observe(key domain.ItemKey, committed map[domain.ItemKey]domain.ReviewRecord) {
	if _, ok := t.base[key]; ok {
		return
	}
	rec, ok := committed[key]
	t.base[key] = baseState{exists: ok, revision: rec.Revision}
}

// txFrom returns the transaction of this store carried by ctx, if any.
func (s *Store) txFrom(ctx context.Context) *tx {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok || t.store != s {
		return nil
	}
	return t
}

// commit publishes t atomically. A record written by t that another caller
// changed in the meantime fails the whole commit with
// domain.ErrRevisionConflict and nothing is applied.
func (s *Store) commit(t *tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, want := range t.base {
		cur, ok := s.records[key]
		if ok != want.exists || cur.Revision != want.revision {
			return fmt.Errorf("review record %s changed during transaction: %w", key.ItemID, domain.ErrRevisionConflict)
		}
	}
	for key, entries := range t.appended {
		var committed []domain.Attempt
		if !t.cleared[key] {
			committed = s.attempts[key]
		}
		for _, a := range entries {
			if hasRevision(committed, a.Revision) {
				return fmt.Errorf("attempt %s rev %d: %w", a.ItemID, a.Revision, domain.ErrAlreadyExists)
			}
		}
	}

	for key, st := range t.records {
		if st.deleted {
			delete(s.records, key)
		} else {
			s.records[key] = st.rec
		}
	}
	for key := range t.cleared {
		delete(s.attempts, key)
	}
	for key, entries := range t.appended {
		s.attempts[key] = append(s.attempts[key], entries...)
	}
	return nil
}

// TxManager runs functions in all-or-nothing transactions over a Store.
type TxManager struct {
	store *Store
}

// NewTxManager creates a TxManager for store.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// RunInTx executes fn with a context that stages every store write. The writes
// are published together if fn returns nil and discarded otherwise. A nested
// call joins the transaction already in ctx.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.store.txFrom(ctx) != nil {
		return fn(ctx)
	}

	t := newTx(m.store)
	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}

	if err := m.store.commit(t); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

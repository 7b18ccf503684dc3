// Package dueindex keeps, per owner, the learnable items ordered by next
// review time so "what is due now" is answered without scanning the store.
//
// The index is a derived cache. The record store stays the source of truth and
// an owner's tree can always be rebuilt from it with ReplaceOwner.
package dueindex

import (
	"bytes"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const btreeDegree = 32

// entry is one indexed item. Never-taken items sort before everything else.
type entry struct {
	itemID     uuid.UUID
	nextReview time.Time
	neverTaken bool
	revision   int64
	seq        uint64 // index write that produced the entry
}

func entryFromRecord(r domain.ReviewRecord) entry {
	e := entry{itemID: r.ItemID, revision: r.Revision, neverTaken: r.NextReviewAt == nil}
	if r.NextReviewAt != nil {
		e.nextReview = *r.NextReviewAt
	}
	return e
}

// less orders by (never taken first, next review asc, item id asc).
func less(a, b entry) bool {
	if a.neverTaken != b.neverTaken {
		return a.neverTaken
	}
	if !a.neverTaken && !a.nextReview.Equal(b.nextReview) {
		return a.nextReview.Before(b.nextReview)
	}
	return bytes.Compare(a.itemID[:], b.itemID[:]) < 0
}

type ownerIndex struct {
	tree    *btree.BTreeG[entry]
	items   map[uuid.UUID]entry
	removed map[uuid.UUID]uint64 // item -> seq of the Remove call
	loaded  bool
}

func newOwnerIndex() *ownerIndex {
	return &ownerIndex{
		tree:    btree.NewG(btreeDegree, less),
		items:   make(map[uuid.UUID]entry),
		removed: make(map[uuid.UUID]uint64),
	}
}

func (o *ownerIndex) put(e entry) {
	if old, ok := o.items[e.itemID]; ok {
		o.tree.Delete(old)
	}
	o.items[e.itemID] = e
	o.tree.ReplaceOrInsert(e)
}

// Mark is a point in the index write history, taken before a store scan so
// ReplaceOwner can tell which writes the scan may have missed.
type Mark uint64

// Index is safe for concurrent use.
type Index struct {
	mu     sync.RWMutex
	seq    uint64
	owners map[uuid.UUID]*ownerIndex
}

// New creates an empty index.
func New() *Index {
	return &Index{owners: make(map[uuid.UUID]*ownerIndex)}
}

func (ix *Index) owner(ownerID uuid.UUID) *ownerIndex {
	o, ok := ix.owners[ownerID]
	if !ok {
		o = newOwnerIndex()
		ix.owners[ownerID] = o
	}
	return o
}

// UpsertResult tells what Upsert did.
type UpsertResult int

const (
	// Applied means the entry was written.
	Applied UpsertResult = iota
	// Stale means a newer revision of the item is already indexed.
	Stale
	// RemovedSince means the item was removed after the writer's mark. The
	// removal may be newer than the record, so nothing was written.
	RemovedSince
)

// Upsert inserts or moves the entry of r, a record committed after since was
// taken. An entry that already carries a newer revision is kept, so a slow
// writer cannot roll the index back. An item removed after since is not
// brought back; the caller re-reads the store to learn which write came last.
func (ix *Index) Upsert(r domain.ReviewRecord, since Mark) UpsertResult {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	o := ix.owner(r.OwnerID)
	if seq, ok := o.removed[r.ItemID]; ok && seq > uint64(since) {
		return RemovedSince
	}
	if cur, ok := o.items[r.ItemID]; ok && cur.revision > r.Revision {
		return Stale
	}
	ix.seq++
	e := entryFromRecord(r)
	e.seq = ix.seq
	delete(o.removed, r.ItemID)
	o.put(e)
	return Applied
}

// Remove drops an item from its owner's tree.
func (ix *Index) Remove(key domain.ItemKey) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	o := ix.owner(key.OwnerID)
	if e, ok := o.items[key.ItemID]; ok {
		o.tree.Delete(e)
		delete(o.items, key.ItemID)
	}
	ix.seq++
	o.removed[key.ItemID] = ix.seq
}

// Due returns up to limit item IDs of ownerID that are due at asOf, in index
// order. A limit <= 0 returns every due item.
func (ix *Index) Due(ownerID uuid.UUID, asOf time.Time, limit int) []uuid.UUID {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	o, ok := ix.owners[ownerID]
	if !ok {
		return []uuid.UUID{}
	}

	out := make([]uuid.UUID, 0, min(max(limit, 0), o.tree.Len()))
	o.tree.Ascend(func(e entry) bool {
		if !e.neverTaken && e.nextReview.After(asOf) {
			return false
		}
		out = append(out, e.itemID)
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Mark returns the current position in the write history. Take it before
// reading the store snapshot that is later passed to ReplaceOwner.
func (ix *Index) Mark() Mark {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return Mark(ix.seq)
}

// ReplaceOwner swaps ownerID's tree for one built from records, a store
// snapshot read after mark was taken, and marks the owner as loaded.
//
// Writes that happened after mark win over the snapshot: newer upserts are
// kept (even for items the snapshot does not contain yet) and items removed
// after mark are not resurrected. Older entries absent from the snapshot are
// dropped. An owner left with nothing to track is evicted instead, so its next
// due query reads the store again.
func (ix *Index) ReplaceOwner(ownerID uuid.UUID, mark Mark, records []domain.ReviewRecord) {
	fresh := newOwnerIndex()

	ix.mu.Lock()
	defer ix.mu.Unlock()

	old := ix.owners[ownerID]
	for _, r := range records {
		if old != nil {
			if seq, ok := old.removed[r.ItemID]; ok && seq > uint64(mark) {
				continue
			}
		}
		fresh.put(entryFromRecord(r))
	}

	if old != nil {
		for id, e := range old.items {
			if e.seq <= uint64(mark) {
				continue
			}
			if cur, ok := fresh.items[id]; ok && cur.revision > e.revision {
				continue
			}
			fresh.put(e)
		}
		for id, seq := range old.removed {
			if seq > uint64(mark) {
				fresh.removed[id] = seq
			}
		}
	}

	if len(fresh.items) == 0 && len(fresh.removed) == 0 {
		delete(ix.owners, ownerID)
		return
	}
	fresh.loaded = true
	ix.owners[ownerID] = fresh
}

// Loaded reports whether ownerID's tree was built from the store at least once.
func (ix *Index) Loaded(ownerID uuid.UUID) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	o, ok := ix.owners[ownerID]
	return ok && o.loaded
}

// Len returns the number of items indexed for ownerID.
func (ix *Index) Len(ownerID uuid.UUID) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if o, ok := ix.owners[ownerID]; ok {
		return o.tree.Len()
	}
	return 0
}

// Owners returns the owners currently present in the index.
func (ix *Index) Owners() []uuid.UUID {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(ix.owners))
	for id := range ix.owners {
		out = append(out, id)
	}
	return out
}

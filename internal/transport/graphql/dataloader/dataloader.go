// Package dataloader provides per-request DataLoaders for the GraphQL
// resolvers. The schedule field of every due item in one response is resolved
// by a single store read per owner.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// scheduleReader is the batch source (consumer-defined).
type scheduleReader interface {
	GetSchedules(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	// ScheduleByItem resolves to nil for items without a record.
	ScheduleByItem *dataloader.Loader[domain.ItemKey, *domain.ReviewRecord]
}

// NewLoaders creates a new set of DataLoaders backed by src.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src scheduleReader) *Loaders {
	return &Loaders{
		ScheduleByItem: dataloader.NewBatchedLoader(
			newScheduleBatchFn(src),
			dataloader.WithWait[domain.ItemKey, *domain.ReviewRecord](wait),
			dataloader.WithBatchCapacity[domain.ItemKey, *domain.ReviewRecord](maxBatch),
		),
	}
}

// newScheduleBatchFn groups the batch by owner and maps the records back to
// key order. A failed owner read fails only that owner's keys.
func newScheduleBatchFn(src scheduleReader) dataloader.BatchFunc[domain.ItemKey, *domain.ReviewRecord] {
	return func(ctx context.Context, keys []domain.ItemKey) []*dataloader.Result[*domain.ReviewRecord] {
		byOwner := make(map[uuid.UUID][]uuid.UUID)
		var owners []uuid.UUID
		for _, k := range keys {
			if _, ok := byOwner[k.OwnerID]; !ok {
				owners = append(owners, k.OwnerID)
			}
			byOwner[k.OwnerID] = append(byOwner[k.OwnerID], k.ItemID)
		}

		found := make(map[domain.ItemKey]*domain.ReviewRecord, len(keys))
		failed := make(map[uuid.UUID]error)
		for _, owner := range owners {
			recs, err := src.GetSchedules(ctx, owner, byOwner[owner])
			if err != nil {
				failed[owner] = err
				continue
			}
			for i := range recs {
				found[recs[i].Key()] = &recs[i]
			}
		}

		results := make([]*dataloader.Result[*domain.ReviewRecord], len(keys))
		for i, k := range keys {
			if err, ok := failed[k.OwnerID]; ok {
				results[i] = &dataloader.Result[*domain.ReviewRecord]{Error: err}
				continue
			}
			results[i] = &dataloader.Result[*domain.ReviewRecord]{Data: found[k]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware installed?")
	}
	return l
}

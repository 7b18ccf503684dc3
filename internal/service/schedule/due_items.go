package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ownerLoadTimeout bounds the store scan that fills an owner's partition.
const ownerLoadTimeout = 30 * time.Second

// GetDueItems returns the items of an owner that are due at input.AsOf:
// never-taken items first, then by next review time, ties by item id. It does
// not modify anything and can be called again with the same input.
//
// The owner's index partition is loaded from the store on first use.
func (s *Service) GetDueItems(ctx context.Context, input DueItemsInput) ([]uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = s.now()
	}

	if err := s.ensureLoaded(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	return s.index.Due(input.OwnerID, asOf, input.Limit), nil
}

// ensureLoaded builds the owner's index partition once. Concurrent first
// queries for the same owner share one store scan. The scan runs detached from
// the caller that started it, so that caller going away does not fail the
// others; each caller still stops waiting when its own ctx is done.
func (s *Service) ensureLoaded(ctx context.Context, ownerID uuid.UUID) error {
	if s.index.Loaded(ownerID) {
		return nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(ownerID.String(), func() (any, error) {
		if s.index.Loaded(ownerID) {
			return nil, nil
		}
		scanCtx, cancel := context.WithTimeout(loadCtx, ownerLoadTimeout)
		defer cancel()
		_, err := s.ReconcileOwner(scanCtx, ownerID)
		return nil, err
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return fmt.Errorf("load due index: %w", res.Err)
		}
		return nil
	}
}

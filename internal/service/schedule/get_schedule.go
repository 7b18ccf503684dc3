package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// GetSchedule returns the review record of an item, or nil if no attempt was
// ever recorded and the item was never registered.
func (s *Service) GetSchedule(ctx context.Context, itemID, ownerID uuid.UUID) (*domain.ReviewRecord, error) {
	key := domain.ItemKey{ItemID: itemID, OwnerID: ownerID}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	rec, err := s.records.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review record: %w", err)
	}
	return rec, nil
}

// GetSchedules returns the records of ownerID among itemIDs. Unknown items are
// absent from the result.
func (s *Service) GetSchedules(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner_id", "required")
	}
	if len(itemIDs) > MaxBatchSize {
		return nil, domain.NewValidationError("item_ids", "too many items")
	}
	if len(itemIDs) == 0 {
		return []domain.ReviewRecord{}, nil
	}

	recs, err := s.records.GetMany(ctx, ownerID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get review records: %w", err)
	}
	return recs, nil
}

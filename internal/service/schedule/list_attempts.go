package schedule

import (
	"context"
	"fmt"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// ListAttempts returns the results history of an item, newest first.
func (s *Service) ListAttempts(ctx context.Context, input ListAttemptsInput) ([]domain.Attempt, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultAttemptsLimit
	}

	attempts, err := s.attempts.ListByItem(ctx, domain.ItemKey{ItemID: input.ItemID, OwnerID: input.OwnerID}, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// ReconcileOwner rebuilds the owner's due index partition from the store and
// returns the number of indexed records.
func (s *Service) ReconcileOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	mark := s.index.Mark()

	recs, err := s.records.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("list records of owner %s: %w", ownerID, err)
	}

	s.index.ReplaceOwner(ownerID, mark, recs)
	return len(recs), nil
}

// ReconcileAll rebuilds every owner partition, including owners that are only
// left in the index because all their records were deleted. A failing owner
// does not stop the pass; all failures are returned joined.
func (s *Service) ReconcileAll(ctx context.Context) (domain.ReconcileStats, error) {
	start := time.Now()

	owners, err := s.records.ListOwners(ctx)
	if err != nil {
		return domain.ReconcileStats{}, fmt.Errorf("list owners: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(owners))
	for _, id := range owners {
		seen[id] = struct{}{}
	}
	for _, id := range s.index.Owners() {
		if _, ok := seen[id]; !ok {
			owners = append(owners, id)
		}
	}

	var (
		stats domain.ReconcileStats
		errs  []error
	)
	for _, ownerID := range owners {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		n, err := s.ReconcileOwner(ctx, ownerID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stats.Owners++
		stats.Records += n
	}
	stats.Duration = time.Since(start)

	s.log.InfoContext(ctx, "due index reconciled",
		slog.Int("owners", stats.Owners),
		slog.Int("records", stats.Records),
		slog.Int("failed", len(errs)),
		slog.Duration("duration", stats.Duration),
	)

	return stats, errors.Join(errs...)
}

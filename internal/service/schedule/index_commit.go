package schedule

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/dueindex"
)

// publish puts a committed record into the due index. since is the index mark
// taken before the commit started. When the item was removed after since, the
// store decides which of the two writes came last.
func (s *Service) publish(ctx context.Context, rec domain.ReviewRecord, since dueindex.Mark) {
	if s.index.Upsert(rec, since) != dueindex.RemovedSince {
		return
	}

	mark := s.index.Mark()
	cur, err := s.records.Get(context.WithoutCancel(ctx), rec.Key())
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.WarnContext(ctx, "due index entry left to reconciler",
			slog.String("owner_id", rec.OwnerID.String()),
			slog.String("item_id", rec.ItemID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if s.index.Upsert(*cur, mark) == dueindex.RemovedSince {
		s.log.DebugContext(ctx, "due index entry left to reconciler",
			slog.String("owner_id", rec.OwnerID.String()),
			slog.String("item_id", rec.ItemID.String()),
		)
	}
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// RegisterItem creates the never-taken record of a newly authored item so it
// shows up in due queries before its first attempt. For an item that already
// has a record it returns the stored one and created is false.
func (s *Service) RegisterItem(ctx context.Context, key domain.ItemKey) (rec *domain.ReviewRecord, created bool, err error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	since := s.index.Mark()
	rec, err = s.records.Register(ctx, domain.NewReviewRecord(key.ItemID, key.OwnerID))
	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, getErr := s.records.Get(ctx, key)
		if getErr != nil {
			return nil, false, fmt.Errorf("get review record: %w", getErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("register item: %w", err)
	}

	s.publish(ctx, *rec, since)

	s.log.InfoContext(ctx, "item registered",
		slog.String("owner_id", key.OwnerID.String()),
		slog.String("item_id", key.ItemID.String()),
	)

	return rec, true, nil
}

// RemoveItem deletes the record and the results log of an item that was
// deleted by its owner.
func (s *Service) RemoveItem(ctx context.Context, key domain.ItemKey) error {
	if err := validateKey(key); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.attempts.DeleteByItem(txCtx, key); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		if err := s.records.Delete(txCtx, key); err != nil {
			return fmt.Errorf("delete review record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.index.Remove(key)

	s.log.InfoContext(ctx, "item removed",
		slog.String("owner_id", key.OwnerID.String()),
		slog.String("item_id", key.ItemID.String()),
	)

	return nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go"
	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule/policy"
)

// RecordAttempt applies one attempt outcome to the item's review record.
//
// The record is read, advanced by the interval policy and written back only if
// its revision did not move in between. A lost race restarts from the read,
// at most MaxRetries times and within CommitTimeout; running out of either is
// reported as domain.ErrConcurrencyExhausted. Cancellation of ctx itself is
// returned unchanged.
func (s *Service) RecordAttempt(ctx context.Context, input RecordAttemptInput) (*domain.ReviewRecord, error) {
	report := input.report(s.now())
	if err := report.Validate(); err != nil {
		return nil, err
	}

	commitCtx := ctx
	if s.cfg.CommitTimeout > 0 {
		var cancel context.CancelFunc
		commitCtx, cancel = context.WithTimeout(ctx, s.cfg.CommitTimeout)
		defer cancel()
	}

	var (
		committed *domain.ReviewRecord
		tries     int
	)
	since := s.index.Mark()
	err := retry.Do(
		func() error {
			tries++
			rec, err := s.commitAttempt(commitCtx, report)
			if err != nil {
				return err
			}
			committed = rec
			return nil
		},
		s.retryOptions(commitCtx, report.Key())...,
	)
	if err != nil {
		return nil, s.commitError(ctx, err, report.Key(), tries)
	}

	s.publish(ctx, *committed, since)

	s.log.InfoContext(ctx, "attempt recorded",
		slog.String("owner_id", committed.OwnerID.String()),
		slog.String("item_id", committed.ItemID.String()),
		slog.Float64("score", report.Score),
		slog.Int("interval_days", committed.IntervalDays),
		slog.Int("attempt_count", committed.AttemptCount),
		slog.Int64("revision", committed.Revision),
		slog.Int("tries", tries),
	)

	return committed, nil
}

// commitAttempt runs one read-compute-write round.
func (s *Service) commitAttempt(ctx context.Context, report domain.AttemptReport) (*domain.ReviewRecord, error) {
	current, err := s.loadRecord(ctx, report.Key())
	if err != nil {
		return nil, err
	}

	interval, err := policy.NextInterval(s.params, current.IntervalDays, report.Score, current.AttemptCount)
	if err != nil {
		return nil, err
	}
	next := current.Advance(report.SubmittedAt, interval)

	var committed *domain.ReviewRecord
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.CompareAndSwap(txCtx, next, current.Revision)
		if err != nil {
			return fmt.Errorf("commit review record: %w", err)
		}

		err = s.attempts.Append(txCtx, domain.Attempt{
			ID:           uuid.New(),
			ItemID:       rec.ItemID,
			OwnerID:      rec.OwnerID,
			Score:        report.Score,
			SubmittedAt:  *rec.LastTakenAt,
			Revision:     rec.Revision,
			IntervalDays: rec.IntervalDays,
			NextReviewAt: *rec.NextReviewAt,
		})
		if err != nil {
			return fmt.Errorf("append attempt: %w", err)
		}

		committed = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return committed, nil
}

// loadRecord returns the stored record or the zero state of a never-seen item.
func (s *Service) loadRecord(ctx context.Context, key domain.ItemKey) (domain.ReviewRecord, error) {
	rec, err := s.records.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewReviewRecord(key.ItemID, key.OwnerID), nil
	}
	if err != nil {
		return domain.ReviewRecord{}, fmt.Errorf("get review record: %w", err)
	}
	return *rec, nil
}

func (s *Service) retryOptions(ctx context.Context, key domain.ItemKey) []retry.Option {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(uint(s.cfg.MaxRetries)),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, domain.ErrRevisionConflict)
		}),
		retry.OnRetry(func(n uint, err error) {
			s.log.DebugContext(ctx, "revision conflict, retrying",
				slog.String("owner_id", key.OwnerID.String()),
				slog.String("item_id", key.ItemID.String()),
				slog.Uint64("try", uint64(n)+1),
			)
		}),
	}

	// RandomDelay needs a positive jitter bound.
	if s.cfg.RetryDelay > 0 {
		return append(opts,
			retry.Delay(s.cfg.RetryDelay),
			retry.MaxJitter(s.cfg.RetryDelay),
			retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		)
	}
	return append(opts, retry.Delay(0), retry.DelayType(retry.FixedDelay))
}

// commitError translates the outcome of the retry loop.
func (s *Service) commitError(ctx context.Context, err error, key domain.ItemKey, tries int) error {
	if ctxErr := ctx.Err(); ctxErr != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrRevisionConflict):
		s.log.WarnContext(ctx, "concurrency exhausted",
			slog.String("owner_id", key.OwnerID.String()),
			slog.String("item_id", key.ItemID.String()),
			slog.Int("tries", tries),
		)
		return fmt.Errorf("%w: item %s: %d conflicting commits", domain.ErrConcurrencyExhausted, key.ItemID, tries)
	case errors.Is(err, context.DeadlineExceeded):
		s.log.WarnContext(ctx, "commit timed out",
			slog.String("owner_id", key.OwnerID.String()),
			slog.String("item_id", key.ItemID.String()),
			slog.Duration("timeout", s.cfg.CommitTimeout),
			slog.Int("tries", tries),
		)
		return fmt.Errorf("%w: item %s: commit timed out after %s", domain.ErrConcurrencyExhausted, key.ItemID, s.cfg.CommitTimeout)
	case errors.Is(err, domain.ErrInvariantViolation):
		s.log.ErrorContext(ctx, "invariant violation",
			slog.String("owner_id", key.OwnerID.String()),
			slog.String("item_id", key.ItemID.String()),
			slog.String("error", err.Error()),
		)
	}
	return err
}

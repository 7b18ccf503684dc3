package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

type reconcileRunner interface {
	ReconcileAll(ctx context.Context) (domain.ReconcileStats, error)
}

// Reconciler periodically rebuilds the due index so entries lost between a
// store commit and the index update come back.
type Reconciler struct {
	runner   reconcileRunner
	interval time.Duration
	log      *slog.Logger
}

// NewReconciler creates a Reconciler that runs every interval.
func NewReconciler(log *slog.Logger, runner reconcileRunner, interval time.Duration) *Reconciler {
	return &Reconciler{
		runner:   runner,
		interval: interval,
		log:      log.With("component", "reconciler"),
	}
}

// Run blocks until ctx is done. Failed passes are logged and retried on the
// next tick.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.InfoContext(ctx, "reconciler started", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.log.InfoContext(ctx, "reconciler stopped")
			return nil
		case <-ticker.C:
			if _, err := r.runner.ReconcileAll(ctx); err != nil && ctx.Err() == nil {
				r.log.ErrorContext(ctx, "reconcile failed", slog.String("error", err.Error()))
			}
		}
	}
}

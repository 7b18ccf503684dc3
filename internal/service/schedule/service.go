package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/dueindex"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule/policy"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordStore interface {
	Get(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, error)
	GetMany(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error)
	CompareAndSwap(ctx context.Context, next domain.ReviewRecord, expectedRevision int64) (*domain.ReviewRecord, error)
	Register(ctx context.Context, rec domain.ReviewRecord) (*domain.ReviewRecord, error)
	Delete(ctx context.Context, key domain.ItemKey) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ReviewRecord, error)
	ListOwners(ctx context.Context) ([]uuid.UUID, error)
}

type attemptLog interface {
	Append(ctx context.Context, a domain.Attempt) error
	ListByItem(ctx context.Context, key domain.ItemKey, limit int) ([]domain.Attempt, error)
	DeleteByItem(ctx context.Context, key domain.ItemKey) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dueIndex interface {
	Upsert(r domain.ReviewRecord, since dueindex.Mark) dueindex.UpsertResult
	Remove(key domain.ItemKey)
	Due(ownerID uuid.UUID, asOf time.Time, limit int) []uuid.UUID
	Mark() dueindex.Mark
	ReplaceOwner(ownerID uuid.UUID, mark dueindex.Mark, records []domain.ReviewRecord)
	Loaded(ownerID uuid.UUID) bool
	Owners() []uuid.UUID
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service applies attempt outcomes to review records and answers due queries.
type Service struct {
	records  recordStore
	attempts attemptLog
	tx       txManager
	index    dueIndex
	log      *slog.Logger
	cfg      domain.ScheduleConfig
	params   policy.Parameters
	loads    singleflight.Group
	now      func() time.Time
}

// NewService creates a new schedule service.
func NewService(
	log *slog.Logger,
	records recordStore,
	attempts attemptLog,
	tx txManager,
	index dueIndex,
	cfg domain.ScheduleConfig,
) (*Service, error) {
	params := policy.FromConfig(cfg)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid interval policy: %w", err)
	}
	if cfg.MaxRetries < 1 {
		return nil, fmt.Errorf("max retries must be >= 1, got %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay < 0 || cfg.CommitTimeout < 0 {
		return nil, fmt.Errorf("retry delay and commit timeout must not be negative")
	}

	return &Service{
		records:  records,
		attempts: attempts,
		tx:       tx,
		index:    index,
		log:      log.With("service", "schedule"),
		cfg:      cfg,
		params:   params,
		now:      time.Now,
	}, nil
}

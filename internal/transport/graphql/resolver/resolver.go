package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/generated"
)

// scheduleService defines what resolver needs from the Schedule service.
type scheduleService interface {
	RecordAttempt(ctx context.Context, input schedule.RecordAttemptInput) (*domain.ReviewRecord, error)
	GetDueItems(ctx context.Context, input schedule.DueItemsInput) ([]uuid.UUID, error)
	GetSchedule(ctx context.Context, itemID, ownerID uuid.UUID) (*domain.ReviewRecord, error)
	RegisterItem(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, bool, error)
	RemoveItem(ctx context.Context, key domain.ItemKey) error
	ListAttempts(ctx context.Context, input schedule.ListAttemptsInput) ([]domain.Attempt, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	schedule scheduleService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, schedule scheduleService) *Resolver {
	return &Resolver{
		schedule: schedule,
		log:      log.With("component", "graphql"),
	}
}

// DueItem returns generated.DueItemResolver implementation.
func (r *Resolver) DueItem() generated.DueItemResolver { return &dueItemResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type dueItemResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

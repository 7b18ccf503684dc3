package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/model"
)

// Schedule is the resolver for the schedule field.
func (r *dueItemResolver) Schedule(ctx context.Context, obj *model.DueItem) (*domain.ReviewRecord, error) {
	return dataloader.FromContext(ctx).ScheduleByItem.Load(ctx, obj.Key())()
}

// RecordAttempt is the resolver for the recordAttempt field.
func (r *mutationResolver) RecordAttempt(ctx context.Context, input model.RecordAttemptInput) (*domain.ReviewRecord, error) {
	score, err := domain.ResolveScore(input.Score, input.Correct, input.Total)
	if err != nil {
		return nil, err
	}

	in := schedule.RecordAttemptInput{
		ItemID:  input.ItemID,
		OwnerID: input.OwnerID,
		Score:   score,
	}
	if input.SubmittedAt != nil {
		in.SubmittedAt = *input.SubmittedAt
	}
	return r.schedule.RecordAttempt(ctx, in)
}

// RegisterItem is the resolver for the registerItem field.
func (r *mutationResolver) RegisterItem(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*model.RegisterItemPayload, error) {
	rec, created, err := r.schedule.RegisterItem(ctx, domain.ItemKey{ItemID: itemID, OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return &model.RegisterItemPayload{Schedule: rec, Created: created}, nil
}

// RemoveItem is the resolver for the removeItem field.
func (r *mutationResolver) RemoveItem(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (bool, error) {
	if err := r.schedule.RemoveItem(ctx, domain.ItemKey{ItemID: itemID, OwnerID: ownerID}); err != nil {
		return false, err
	}
	return true, nil
}

// DueItems is the resolver for the dueItems field.
func (r *queryResolver) DueItems(ctx context.Context, ownerID uuid.UUID, asOf *time.Time, limit *int) ([]model.DueItem, error) {
	in := schedule.DueItemsInput{
		OwnerID: ownerID,
		Limit:   intOr(limit, defaultDueLimit),
	}
	if asOf != nil {
		in.AsOf = *asOf
	}

	ids, err := r.schedule.GetDueItems(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]model.DueItem, len(ids))
	for i, id := range ids {
		items[i] = model.DueItem{ItemID: id, OwnerID: ownerID}
	}
	return items, nil
}

// Schedule is the resolver for the schedule field.
func (r *queryResolver) Schedule(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID) (*domain.ReviewRecord, error) {
	return r.schedule.GetSchedule(ctx, itemID, ownerID)
}

// Attempts is the resolver for the attempts field.
func (r *queryResolver) Attempts(ctx context.Context, ownerID uuid.UUID, itemID uuid.UUID, limit *int) ([]domain.Attempt, error) {
	return r.schedule.ListAttempts(ctx, schedule.ListAttemptsInput{
		OwnerID: ownerID,
		ItemID:  itemID,
		Limit:   intOr(limit, 0),
	})
}

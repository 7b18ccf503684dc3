package graphql

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/generated"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql/resolver"
)

const (
	complexityLimit = 500
	queryCacheSize  = 1000
)

// scheduleService is everything the resolvers and the loaders call.
type scheduleService interface {
	RecordAttempt(ctx context.Context, input schedule.RecordAttemptInput) (*domain.ReviewRecord, error)
	GetDueItems(ctx context.Context, input schedule.DueItemsInput) ([]uuid.UUID, error)
	GetSchedule(ctx context.Context, itemID, ownerID uuid.UUID) (*domain.ReviewRecord, error)
	GetSchedules(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error)
	RegisterItem(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, bool, error)
	RemoveItem(ctx context.Context, key domain.ItemKey) error
	ListAttempts(ctx context.Context, input schedule.ListAttemptsInput) ([]domain.Attempt, error)
}

// NewHandler builds the /query endpoint. Every request gets its own
// dataloaders, so due items of one response share a store read.
func NewHandler(svc scheduleService, log *slog.Logger) http.Handler {
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: resolver.NewResolver(log, svc)})

	srv := handler.New(schema)
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	srv.Use(extension.FixedComplexityLimit(complexityLimit))
	srv.SetErrorPresenter(NewErrorPresenter(log))

	return dataloader.Middleware(svc)(srv)
}

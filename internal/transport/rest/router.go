package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/review-scheduler/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together. A nil RateLimit
// disables rate limiting. GraphQL, when set, is served at /query behind the
// same rate limit as the /v1 routes.
type RouterDeps struct {
	Schedule  *ScheduleHandler
	Health    *HealthHandler
	GraphQL   http.Handler
	RateLimit middleware.Middleware
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler with all routes and the middleware chain.
// Health endpoints bypass rate limiting.
func NewRouter(deps RouterDeps) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("PUT /v1/owners/{ownerID}/items/{itemID}", deps.Schedule.RegisterItem)
	api.HandleFunc("DELETE /v1/owners/{ownerID}/items/{itemID}", deps.Schedule.RemoveItem)
	api.HandleFunc("POST /v1/owners/{ownerID}/items/{itemID}/attempts", deps.Schedule.RecordAttempt)
	api.HandleFunc("GET /v1/owners/{ownerID}/items/{itemID}/attempts", deps.Schedule.ListAttempts)
	api.HandleFunc("GET /v1/owners/{ownerID}/items/{itemID}/schedule", deps.Schedule.GetSchedule)
	api.HandleFunc("GET /v1/owners/{ownerID}/due", deps.Schedule.DueItems)

	limited := middleware.If(deps.RateLimit != nil, deps.RateLimit)

	mux := http.NewServeMux()
	mux.Handle("/v1/", limited(api))
	if deps.GraphQL != nil {
		mux.Handle("POST /query", limited(deps.GraphQL))
		mux.Handle("GET /query", limited(deps.GraphQL))
	}
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)(mux)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/review-scheduler/internal/config"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
	"github.com/heartmarshall/review-scheduler/internal/transport/graphql"
	"github.com/heartmarshall/review-scheduler/internal/transport/middleware"
	"github.com/heartmarshall/review-scheduler/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run starts the scheduler service: it opens the store, warms the due index,
// serves HTTP and runs the periodic index reconciler until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("policy", cfg.Schedule.Policy),
	)

	backend, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	if cfg.Index.WarmOnStartup {
		stats, err := backend.Service.ReconcileAll(ctx)
		if err != nil {
			// Partitions that failed to load are loaded lazily on first query.
			logger.Warn("due index warm-up incomplete", slog.String("error", err.Error()))
		}
		logger.Info("due index warmed",
			slog.Int("owners", stats.Owners),
			slog.Int("records", stats.Records),
			slog.Duration("took", stats.Duration),
		)
	}

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitCleanup)
		defer limiter.Stop()
		rateLimit = limiter.Limit()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Schedule:  rest.NewScheduleHandler(backend.Service, logger),
		Health:    rest.NewHealthHandler(backend.Store, backend.Index, Version),
		GraphQL:   graphql.NewHandler(backend.Service, logger),
		RateLimit: rateLimit,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Index.ReconcileInterval > 0 {
		g.Go(func() error {
			return schedule.NewReconciler(logger, backend.Service, cfg.Index.ReconcileInterval).Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

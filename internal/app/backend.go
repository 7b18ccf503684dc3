package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/review-scheduler/internal/adapter/memory"
	"github.com/heartmarshall/review-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/review-scheduler/internal/adapter/postgres/attemptlog"
	"github.com/heartmarshall/review-scheduler/internal/adapter/postgres/reviewrecord"
	"github.com/heartmarshall/review-scheduler/internal/adapter/sqlite"
	"github.com/heartmarshall/review-scheduler/internal/config"
	"github.com/heartmarshall/review-scheduler/internal/dueindex"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
)

// pinger reports whether the record store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// Backend is the schedule service wired to the configured record store.
type Backend struct {
	Service *schedule.Service
	Index   *dueindex.Index
	Store   pinger

	closeFn func()
}

// Close releases the store connections.
func (b *Backend) Close() {
	if b.closeFn != nil {
		b.closeFn()
	}
}

// OpenBackend connects the store selected by cfg.Database.Driver, applies
// migrations when auto_migrate is set and builds the schedule service.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	idx := dueindex.New()
	scheduleCfg := cfg.Schedule.Domain()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		if cfg.Database.AutoMigrate {
			if _, err := migratePostgres(ctx, cfg.Database.DSN, logger); err != nil {
				return nil, err
			}
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}

		svc, err := schedule.NewService(logger,
			reviewrecord.New(pool), attemptlog.New(pool), postgres.NewTxManager(pool), idx, scheduleCfg)
		if err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database connected", slog.String("driver", config.DriverPostgres))
		return &Backend{Service: svc, Index: idx, Store: pool, closeFn: pool.Close}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite files are local to the process, so the schema is always brought up to date.
		if n, err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		} else if n > 0 {
			logger.Info("migrations applied", slog.Int("count", n))
		}

		records := sqlite.NewRecordStore(db)
		svc, err := schedule.NewService(logger,
			records, sqlite.NewAttemptLog(db), sqlite.NewTxManager(db), idx, scheduleCfg)
		if err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("database connected", slog.String("driver", config.DriverSQLite))
		return &Backend{Service: svc, Index: idx, Store: records, closeFn: func() { db.Close() }}, nil

	case config.DriverMemory:
		store := memory.New()
		svc, err := schedule.NewService(logger, store, store, memory.NewTxManager(store), idx, scheduleCfg)
		if err != nil {
			return nil, err
		}
		logger.Warn("using in-memory store, data is lost on exit")
		return &Backend{Service: svc, Index: idx, Store: store}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// Migrate brings the configured store's schema up to date and returns the
// number of applied migrations.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (int, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return migratePostgres(ctx, cfg.Database.DSN, logger)
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return 0, fmt.Errorf("open sqlite: %w", err)
		}
		defer db.Close()
		return sqlite.Migrate(ctx, db)
	case config.DriverMemory:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func migratePostgres(ctx context.Context, dsn string, logger *slog.Logger) (int, error) {
	n, err := postgres.Migrate(ctx, dsn)
	if err != nil {
		return 0, fmt.Errorf("migrate database: %w", err)
	}
	if n > 0 {
		logger.Info("migrations applied", slog.Int("count", n))
	}
	return n, nil
}

// Package sqlite implements the review record store and the attempt log on an
// embedded SQLite database (pure Go driver, no cgo). It is meant for single
// node deployments and local development.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/review-scheduler/migrations"
)

// Open opens the SQLite database at dsn and applies the connection pragmas.
// The pool is limited to one connection: SQLite serializes writers anyway and
// a single connection keeps ":memory:" databases alive for the pool lifetime.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// Migrate applies the embedded SQLite schema.
func Migrate(ctx context.Context, db *sqlx.DB) (int, error) {
	return migrations.Up(ctx, goose.DialectSQLite3, db.DB)
}

func applyPragmas(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func toMicros(t time.Time) int64 {
	return t.UnixMicro()
}

func toMicrosPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.UnixMicro()
	return &v
}

func fromMicros(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

func fromMicrosPtr(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := fromMicros(*v)
	return &t
}

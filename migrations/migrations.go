// Package migrations embeds the schema of both SQL stores and applies it with
// goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration directory of a goose dialect.
func FS(dialect goose.Dialect) (fs.FS, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = "postgres"
	case goose.DialectSQLite3:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	return fs.Sub(files, dir)
}

// NewProvider returns a goose provider over the embedded migrations.
func NewProvider(dialect goose.Dialect, db *sql.DB) (*goose.Provider, error) {
	fsys, err := FS(dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Up applies all pending migrations and returns how many were applied.
func Up(ctx context.Context, dialect goose.Dialect, db *sql.DB) (int, error) {
	provider, err := NewProvider(dialect, db)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/review-scheduler/migrations"
)

// Migrate applies the embedded schema to the database at dsn. goose needs a
// *sql.DB, so a short-lived database/sql handle is opened over the pgx driver.
func Migrate(ctx context.Context, dsn string) (int, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return 0, fmt.Errorf("open database for migrations: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return 0, fmt.Errorf("ping database for migrations: %w", err)
	}

	return migrations.Up(ctx, goose.DialectPostgres, db)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// mapError converts database/sql and SQLite errors to domain errors. Context
// errors pass through.
func mapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var sqlErr *moderncsqlite.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s %v: %w: %s", entity, id, domain.ErrInvariantViolation, sqlErr.Error())
		}
		// Primary code of extended results such as SQLITE_BUSY_SNAPSHOT.
		switch sqlErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(sqlErr.Error(), "UNIQUE") {
				return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
			}
			return fmt.Errorf("%s %v: %w: %s", entity, id, domain.ErrInvariantViolation, sqlErr.Error())
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			// Lost the write lock to a concurrent writer; the caller re-reads.
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrRevisionConflict)
		}
	}

	return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
}

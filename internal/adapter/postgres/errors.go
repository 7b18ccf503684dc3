package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// SQLSTATE codes the store reacts to.
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// MapError converts pgx errors into the domain error taxonomy, prefixed with
// the entity and id. Context errors keep their identity so callers can tell a
// deadline from an outage. Anything the domain has no name for becomes
// domain.ErrStoreUnavailable.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	wrap := func(target error) error {
		return fmt.Errorf("%s %v: %w", entity, id, target)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return wrap(domain.ErrAlreadyExists)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w: %s", entity, id, domain.ErrInvariantViolation, pgErr.ConstraintName)
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return wrap(domain.ErrRevisionConflict)
		}
	}

	return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
}

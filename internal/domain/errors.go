package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Scheduler error taxonomy.
var (
	// ErrInvalidScore is a caller error: the score is outside [0,1]. Never retried.
	ErrInvalidScore = errors.New("invalid score")
	// ErrConcurrencyExhausted means the optimistic commit kept losing races
	// (or ran out of time). The caller may retry the whole call with backoff.
	ErrConcurrencyExhausted = errors.New("concurrency exhausted")
	// ErrStoreUnavailable wraps infrastructure failures of the record store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvariantViolation is a programming error and must not be swallowed.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrRevisionConflict is returned by stores when a conditional write
	// observed a different revision than expected.
	ErrRevisionConflict = errors.New("revision conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewInvalidScoreError reports a score outside [0,1]. The result matches both
// ErrInvalidScore and ErrValidation.
func NewInvalidScoreError(score float64) error {
	return fmt.Errorf("%w: %w", ErrInvalidScore,
		NewValidationError("score", fmt.Sprintf("must be between 0 and 1 (got %v)", score)))
}

// NewInvariantError reports a broken data invariant.
func NewInvariantError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

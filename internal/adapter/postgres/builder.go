package postgres

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder that emits $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// UTCPtr returns a copy of t in UTC, keeping nil as nil.
func UTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

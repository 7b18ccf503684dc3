package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ReviewDay is the length of one interval day. Intervals are counted in fixed
// 24h steps so schedules do not drift around DST changes.
const ReviewDay = 24 * time.Hour

// ItemKey identifies a learnable item together with the learner who owns it.
type ItemKey struct {
	ItemID  uuid.UUID
	OwnerID uuid.UUID
}

// ReviewRecord is the scheduling state of one learnable item for its owner.
type ReviewRecord struct {
	ItemID       uuid.UUID
	OwnerID      uuid.UUID
	LastTakenAt  *time.Time
	NextReviewAt *time.Time
	IntervalDays int
	AttemptCount int
	Revision     int64
	UpdatedAt    time.Time
}

// NewReviewRecord returns the zero-state record of an item that was never taken.
func NewReviewRecord(itemID, ownerID uuid.UUID) ReviewRecord {
	return ReviewRecord{ItemID: itemID, OwnerID: ownerID}
}

// Key returns the (item, owner) key of the record.
func (r ReviewRecord) Key() ItemKey {
	return ItemKey{ItemID: r.ItemID, OwnerID: r.OwnerID}
}

// NeverTaken reports whether no attempt has been committed for the item yet.
func (r ReviewRecord) NeverTaken() bool {
	return r.LastTakenAt == nil
}

// IsDue returns true if the item should be presented at asOf.
//   - never-taken items are always due.
//   - other items are due when NextReviewAt <= asOf.
func (r ReviewRecord) IsDue(asOf time.Time) bool {
	if r.NeverTaken() || r.NextReviewAt == nil {
		return true
	}
	return !r.NextReviewAt.After(asOf)
}

// Validate checks the record invariants. A violation is reported as
// ErrInvariantViolation.
func (r ReviewRecord) Validate() error {
	switch {
	case r.ItemID == uuid.Nil || r.OwnerID == uuid.Nil:
		return NewInvariantError("record key must not be nil (item %s, owner %s)", r.ItemID, r.OwnerID)
	case (r.LastTakenAt == nil) != (r.NextReviewAt == nil):
		return NewInvariantError("item %s: last_taken_at and next_review_at must be set together", r.ItemID)
	case r.LastTakenAt != nil && r.NextReviewAt.Before(*r.LastTakenAt):
		return NewInvariantError("item %s: next_review_at %s precedes last_taken_at %s",
			r.ItemID, r.NextReviewAt.Format(time.RFC3339), r.LastTakenAt.Format(time.RFC3339))
	case r.IntervalDays < 0:
		return NewInvariantError("item %s: interval_days %d < 0", r.ItemID, r.IntervalDays)
	case r.AttemptCount < 0:
		return NewInvariantError("item %s: attempt_count %d < 0", r.ItemID, r.AttemptCount)
	case r.Revision < 0:
		return NewInvariantError("item %s: revision %d < 0", r.ItemID, r.Revision)
	}
	return nil
}

// Advance returns the record that results from committing an attempt taken at
// submittedAt with the given new interval. The receiver is not modified.
// Timestamps are normalized to UTC with microsecond precision, which is what
// the SQL stores persist.
func (r ReviewRecord) Advance(submittedAt time.Time, intervalDays int) ReviewRecord {
	taken := submittedAt.UTC().Truncate(time.Microsecond)
	next := taken.Add(time.Duration(intervalDays) * ReviewDay)

	return ReviewRecord{
		ItemID:       r.ItemID,
		OwnerID:      r.OwnerID,
		LastTakenAt:  &taken,
		NextReviewAt: &next,
		IntervalDays: intervalDays,
		AttemptCount: r.AttemptCount + 1,
		Revision:     r.Revision + 1,
		UpdatedAt:    r.UpdatedAt,
	}
}

// AttemptReport is a completed attempt reported by the quiz-submission handler.
// It is consumed to update a ReviewRecord and is not stored as such.
type AttemptReport struct {
	ItemID      uuid.UUID
	OwnerID     uuid.UUID
	Score       float64
	SubmittedAt time.Time
}

// Key returns the (item, owner) key the report applies to.
func (a AttemptReport) Key() ItemKey {
	return ItemKey{ItemID: a.ItemID, OwnerID: a.OwnerID}
}

// Validate checks all fields. An out-of-range score is reported on its own as
// ErrInvalidScore so callers can reject it without looking at anything else.
func (a AttemptReport) Validate() error {
	if !ValidScore(a.Score) {
		return NewInvalidScoreError(a.Score)
	}

	var errs []FieldError
	if a.ItemID == uuid.Nil {
		errs = append(errs, FieldError{Field: "item_id", Message: "required"})
	}
	if a.OwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "owner_id", Message: "required"})
	}
	if a.SubmittedAt.IsZero() {
		errs = append(errs, FieldError{Field: "submitted_at", Message: "required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ValidScore reports whether s is a normalized score in [0,1].
func ValidScore(s float64) bool {
	return !math.IsNaN(s) && s >= 0 && s <= 1
}

// ScoreFromCounts normalizes a "correct out of total" quiz result into [0,1].
func ScoreFromCounts(correct, total int) (float64, error) {
	if total <= 0 || correct < 0 || correct > total {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScore,
			NewValidationError("correct", fmt.Sprintf("must be between 0 and total (got %d of %d)", correct, total)))
	}
	return float64(correct) / float64(total), nil
}

// ResolveScore returns the normalized score of a quiz result given either as
// a score or as correct/total counts. Exactly one form must be present.
func ResolveScore(score *float64, correct, total *int) (float64, error) {
	hasCounts := correct != nil || total != nil
	switch {
	case score != nil && hasCounts:
		return 0, NewValidationError("score", "give either score or correct/total, not both")
	case score != nil:
		if !ValidScore(*score) {
			return 0, NewInvalidScoreError(*score)
		}
		return *score, nil
	case correct != nil && total != nil:
		return ScoreFromCounts(*correct, *total)
	case hasCounts:
		return 0, NewValidationError("total", "correct and total must be given together")
	default:
		return 0, NewValidationError("score", "required")
	}
}

// Attempt is one entry of the results log, written in the same transaction as
// the record commit it produced.
type Attempt struct {
	ID           uuid.UUID
	ItemID       uuid.UUID
	OwnerID      uuid.UUID
	Score        float64
	SubmittedAt  time.Time
	Revision     int64
	IntervalDays int
	NextReviewAt time.Time
	RecordedAt   time.Time
}

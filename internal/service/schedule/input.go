package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

const (
	// MaxDueLimit bounds one due query.
	MaxDueLimit = 1000
	// MaxBatchSize bounds GetSchedules.
	MaxBatchSize = 1000

	defaultAttemptsLimit = 20
	maxAttemptsLimit     = 1000
)

// RecordAttemptInput is one completed attempt. A zero SubmittedAt means "now".
type RecordAttemptInput struct {
	ItemID      uuid.UUID
	OwnerID     uuid.UUID
	Score       float64
	SubmittedAt time.Time
}

func (i RecordAttemptInput) report(now time.Time) domain.AttemptReport {
	submitted := i.SubmittedAt
	if submitted.IsZero() {
		submitted = now
	}
	return domain.AttemptReport{
		ItemID:      i.ItemID,
		OwnerID:     i.OwnerID,
		Score:       i.Score,
		SubmittedAt: submitted,
	}
}

// DueItemsInput holds the parameters of a due query. A zero AsOf means "now".
type DueItemsInput struct {
	OwnerID uuid.UUID
	AsOf    time.Time
	Limit   int
}

// Validate checks all fields and collects all errors.
func (i *DueItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if i.Limit < 1 || i.Limit > MaxDueLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 1000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListAttemptsInput selects the results history of one item.
type ListAttemptsInput struct {
	OwnerID uuid.UUID
	ItemID  uuid.UUID
	Limit   int // 0 means the default page size
}

// Validate checks all fields and collects all errors.
func (i *ListAttemptsInput) Validate() error {
	var errs []domain.FieldError

	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxAttemptsLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateKey(key domain.ItemKey) error {
	var errs []domain.FieldError

	if key.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if key.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

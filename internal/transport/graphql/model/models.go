package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// DueItem is one entry of the due view. Its schedule is resolved lazily.
type DueItem struct {
	ItemID  uuid.UUID
	OwnerID uuid.UUID
}

// Key returns the record key of the item.
func (d DueItem) Key() domain.ItemKey {
	return domain.ItemKey{ItemID: d.ItemID, OwnerID: d.OwnerID}
}

// RegisterItemPayload is the result of registerItem.
type RegisterItemPayload struct {
	Schedule *domain.ReviewRecord
	Created  bool
}

// RecordAttemptInput is the input of recordAttempt.
type RecordAttemptInput struct {
	OwnerID     uuid.UUID
	ItemID      uuid.UUID
	Score       *float64
	Correct     *int
	Total       *int
	SubmittedAt *time.Time
}

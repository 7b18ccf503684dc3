package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
)

const defaultDueLimit = 100

// scheduleService defines what the schedule handler needs from the service layer.
type scheduleService interface {
	RecordAttempt(ctx context.Context, input schedule.RecordAttemptInput) (*domain.ReviewRecord, error)
	GetDueItems(ctx context.Context, input schedule.DueItemsInput) ([]uuid.UUID, error)
	GetSchedule(ctx context.Context, itemID, ownerID uuid.UUID) (*domain.ReviewRecord, error)
	GetSchedules(ctx context.Context, ownerID uuid.UUID, itemIDs []uuid.UUID) ([]domain.ReviewRecord, error)
	RegisterItem(ctx context.Context, key domain.ItemKey) (*domain.ReviewRecord, bool, error)
	RemoveItem(ctx context.Context, key domain.ItemKey) error
	ListAttempts(ctx context.Context, input schedule.ListAttemptsInput) ([]domain.Attempt, error)
}

// ScheduleHandler serves the review schedule endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

// ---------------------------------------------------------------------------
// Request / Response types
// ---------------------------------------------------------------------------

type attemptRequest struct {
	Score       *float64   `json:"score"`
	Correct     *int       `json:"correct"`
	Total       *int       `json:"total"`
	SubmittedAt *time.Time `json:"submittedAt"`
}

type recordResponse struct {
	ItemID       string     `json:"itemId"`
	OwnerID      string     `json:"ownerId"`
	LastTakenAt  *time.Time `json:"lastTakenAt"`
	NextReviewAt *time.Time `json:"nextReviewAt"`
	IntervalDays int        `json:"intervalDays"`
	AttemptCount int        `json:"attemptCount"`
	Revision     int64      `json:"revision"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type attemptResponse struct {
	ID           string    `json:"id"`
	Score        float64   `json:"score"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Revision     int64     `json:"revision"`
	IntervalDays int       `json:"intervalDays"`
	NextReviewAt time.Time `json:"nextReviewAt"`
	RecordedAt   time.Time `json:"recordedAt"`
}

type attemptsResponse struct {
	Attempts []attemptResponse `json:"attempts"`
}

type dueItem struct {
	ItemID   string          `json:"itemId"`
	Schedule *recordResponse `json:"schedule,omitempty"`
}

type dueResponse struct {
	OwnerID string    `json:"ownerId"`
	AsOf    time.Time `json:"asOf"`
	Items   []dueItem `json:"items"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// RegisterItem handles PUT /v1/owners/{ownerID}/items/{itemID}.
func (h *ScheduleHandler) RegisterItem(w http.ResponseWriter, r *http.Request) {
	key, err := itemKeyFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, created, err := h.svc.RegisterItem(r.Context(), key)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toRecordResponse(rec))
}

// RemoveItem handles DELETE /v1/owners/{ownerID}/items/{itemID}.
func (h *ScheduleHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	key, err := itemKeyFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), key); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordAttempt handles POST /v1/owners/{ownerID}/items/{itemID}/attempts.
func (h *ScheduleHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	key, err := itemKeyFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "invalid request body", nil)
		return
	}

	score, err := req.score()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := schedule.RecordAttemptInput{
		ItemID:  key.ItemID,
		OwnerID: key.OwnerID,
		Score:   score,
	}
	if req.SubmittedAt != nil {
		input.SubmittedAt = *req.SubmittedAt
	}

	rec, err := h.svc.RecordAttempt(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// ListAttempts handles GET /v1/owners/{ownerID}/items/{itemID}/attempts.
func (h *ScheduleHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	key, err := itemKeyFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	attempts, err := h.svc.ListAttempts(r.Context(), schedule.ListAttemptsInput{
		OwnerID: key.OwnerID,
		ItemID:  key.ItemID,
		Limit:   limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := attemptsResponse{Attempts: make([]attemptResponse, 0, len(attempts))}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, attemptResponse{
			ID:           a.ID.String(),
			Score:        a.Score,
			SubmittedAt:  a.SubmittedAt,
			Revision:     a.Revision,
			IntervalDays: a.IntervalDays,
			NextReviewAt: a.NextReviewAt,
			RecordedAt:   a.RecordedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetSchedule handles GET /v1/owners/{ownerID}/items/{itemID}/schedule.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	key, err := itemKeyFromPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.GetSchedule(r.Context(), key.ItemID, key.OwnerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no schedule for item", nil)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// DueItems handles GET /v1/owners/{ownerID}/due.
func (h *ScheduleHandler) DueItems(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuidFromPath(r, "ownerID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := intQuery(r, "limit", defaultDueLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	asOf := time.Now().UTC()
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		asOf, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("asOf", "must be an RFC3339 timestamp"))
			return
		}
	}

	ids, err := h.svc.GetDueItems(r.Context(), schedule.DueItemsInput{
		OwnerID: ownerID,
		AsOf:    asOf,
		Limit:   limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := dueResponse{OwnerID: ownerID.String(), AsOf: asOf, Items: make([]dueItem, len(ids))}
	for i, id := range ids {
		resp.Items[i] = dueItem{ItemID: id.String()}
	}

	if r.URL.Query().Get("expand") == "schedule" && len(ids) > 0 {
		recs, err := h.svc.GetSchedules(r.Context(), ownerID, ids)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		byItem := make(map[uuid.UUID]*domain.ReviewRecord, len(recs))
		for i := range recs {
			byItem[recs[i].ItemID] = &recs[i]
		}
		for i, id := range ids {
			if rec, ok := byItem[id]; ok {
				resp.Items[i].Schedule = toRecordResponse(rec)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (req attemptRequest) score() (float64, error) {
	return domain.ResolveScore(req.Score, req.Correct, req.Total)
}

func itemKeyFromPath(r *http.Request) (domain.ItemKey, error) {
	ownerID, err := uuidFromPath(r, "ownerID")
	if err != nil {
		return domain.ItemKey{}, err
	}
	itemID, err := uuidFromPath(r, "itemID")
	if err != nil {
		return domain.ItemKey{}, err
	}
	return domain.ItemKey{ItemID: itemID, OwnerID: ownerID}, nil
}

func uuidFromPath(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func toRecordResponse(rec *domain.ReviewRecord) *recordResponse {
	return &recordResponse{
		ItemID:       rec.ItemID.String(),
		OwnerID:      rec.OwnerID.String(),
		LastTakenAt:  rec.LastTakenAt,
		NextReviewAt: rec.NextReviewAt,
		IntervalDays: rec.IntervalDays,
		AttemptCount: rec.AttemptCount,
		Revision:     rec.Revision,
		UpdatedAt:    rec.UpdatedAt,
	}
}

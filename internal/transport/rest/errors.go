package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// statusClientClosedRequest is logged when the client went away before the
// response was ready. Nothing is written to the body.
const statusClientClosedRequest = 499

// errorBody is the JSON envelope of every error response.
type errorBody struct {
	Error errorPayload `json:"error"`
}

type errorPayload struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a service error to its HTTP status. Unknown errors are
// logged and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidScore):
		writeError(w, http.StatusBadRequest, "INVALID_SCORE", "score must be between 0 and 1", validationFields(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", "invalid input", validationFields(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found", nil)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists", nil)
	case errors.Is(err, domain.ErrConcurrencyExhausted):
		log.WarnContext(r.Context(), "commit gave up", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusConflict, "CONCURRENCY_EXHAUSTED", "please try again", nil)
	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "service unavailable", nil)
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request cancelled by client", slog.String("error", err.Error()))
		w.WriteHeader(statusClientClosedRequest)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string, fields []fieldError) {
	writeJSON(w, status, errorBody{Error: errorPayload{Code: code, Message: message, Fields: fields}})
}

func validationFields(err error) []fieldError {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make([]fieldError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
	}
	return fields
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/at-ishikawa/flashpapers/internal/srs"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, errorResponse{
		Error:     message,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, srs.ErrInvalidGrade),
		errors.Is(err, srs.ErrInvalidParameters),
		errors.Is(err, srs.ErrReviewOutOfOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

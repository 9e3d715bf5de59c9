package server

import (
	"net/http"
	"strconv"

	"github.com/at-ishikawa/flashpapers/internal/review"
	"github.com/at-ishikawa/flashpapers/internal/srs"
)

type reviewRequest struct {
	PaperID string `json:"paper_id" validate:"required"`
	Grade   string `json:"grade" validate:"required"`
}

type reviewResponse struct {
	PaperID        string `json:"paper_id"`
	ReviewCount    int    `json:"review_count"`
	IntervalDays   int    `json:"interval_days"`
	NextReviewDate string `json:"next_review_date"`
}

func (s *Server) handleListDueReviews(w http.ResponseWriter, r *http.Request) {
	papers, err := s.store.LoadAll()
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	due := review.Due(papers, s.now(), limit)
	respondJSON(w, http.StatusOK, due)
}

func (s *Server) handleRecordReview(w http.ResponseWriter, r *http.Request) {
	var request reviewRequest
	if err := decodeAndValidate(r, &request); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	grade, err := srs.ParseGrade(request.Grade)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.store.FindByID(request.PaperID)
	if err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}

	state, err := srs.ApplyReview(p.SchedulingState(), grade, s.params, s.now())
	if err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}

	p.SetSchedulingState(state)
	if err := s.store.Update(p); err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, reviewResponse{
		PaperID:        p.ID,
		ReviewCount:    state.ReviewCount,
		IntervalDays:   state.IntervalDays,
		NextReviewDate: state.DueDate.Format("2006-01-02"),
	})
}

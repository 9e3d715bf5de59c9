package server

import (
	"net/http"
	"strconv"

	"github.com/at-ishikawa/flashpapers/internal/analytics"
)

type analyticsResponse struct {
	Overview    analytics.Overview             `json:"overview"`
	Categories  []analytics.CategoryStatistics `json:"categories"`
	Upcoming    []analytics.UpcomingDay        `json:"upcoming"`
	Monthly     []analytics.MonthlyActivity    `json:"monthly"`
	Performance analytics.PerformanceMetrics   `json:"performance"`
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	papers, err := s.store.LoadAll()
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, r, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		days = parsed
	}

	now := s.now()
	respondJSON(w, http.StatusOK, analyticsResponse{
		Overview:    analytics.CalculateOverview(papers, now),
		Categories:  analytics.CalculateCategoryStatistics(papers, now),
		Upcoming:    analytics.CalculateUpcomingReviews(papers, now, days),
		Monthly:     analytics.CalculateMonthlyActivity(papers),
		Performance: analytics.CalculatePerformanceMetrics(papers, now),
	})
}

// Package server exposes the paper collection over a JSON REST API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/at-ishikawa/flashpapers/internal/srs"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

// Server is the flashpapers REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	store     *store.Store
	params    srs.Parameters
	startTime time.Time
	now       func() time.Time
}

// New creates a new Server with all routes registered.
func New(paperStore *store.Store, params srs.Parameters, allowedOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		store:     paperStore,
		params:    params,
		startTime: time.Now(),
		now:       time.Now,
	}
	s.routes(allowedOrigins)
	return s
}

func (s *Server) routes(allowedOrigins []string) {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/papers", func(r chi.Router) {
			r.Get("/", s.handleListPapers)
			r.Post("/", s.handleCreatePaper)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetPaper)
				r.Put("/", s.handleUpdatePaper)
				r.Delete("/", s.handleDeletePaper)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/due", s.handleListDueReviews)
			r.Post("/", s.handleRecordReview)
		})

		r.Get("/search", s.handleSearch)
		r.Get("/analytics", s.handleAnalytics)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

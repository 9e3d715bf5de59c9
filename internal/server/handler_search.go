package server

import (
	"net/http"

	"github.com/at-ishikawa/flashpapers/internal/search"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	papers, err := s.store.LoadAll()
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	filters := search.Filters{
		Query:      query.Get("q"),
		Categories: query["category"],
		Keywords:   query["keyword"],
	}
	matched := search.Search(papers, filters)
	respondJSON(w, http.StatusOK, matched)
}

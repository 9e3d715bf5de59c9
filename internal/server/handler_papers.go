package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

var validate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type paperRequest struct {
	PaperTitle string `json:"paper_title" validate:"required"`
	Authors    string `json:"authors" validate:"required"`

	BackgroundOfTheStudy            string `json:"background_of_the_study"`
	ResearchObjectivesAndHypothesis string `json:"research_objectives_and_hypothesis"`
	Methodology                     string `json:"methodology"`
	ResultsAndFindings              string `json:"results_and_findings"`
	DiscussionAndInterpretation     string `json:"discussion_and_interpretation"`
	ContributionsToTheField         string `json:"contributions_to_the_field"`
	AchievementsAndSignificance     string `json:"achievements_and_significance"`

	Link     string   `json:"link"`
	Notes    string   `json:"notes"`
	Keywords []string `json:"keywords"`
	Category []string `json:"category"`
}

func decodeAndValidate(r *http.Request, request any) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (request paperRequest) apply(p *paper.Paper) {
	p.PaperTitle = request.PaperTitle
	p.Authors = request.Authors
	p.BackgroundOfTheStudy = request.BackgroundOfTheStudy
	p.ResearchObjectivesAndHypothesis = request.ResearchObjectivesAndHypothesis
	p.Methodology = request.Methodology
	p.ResultsAndFindings = request.ResultsAndFindings
	p.DiscussionAndInterpretation = request.DiscussionAndInterpretation
	p.ContributionsToTheField = request.ContributionsToTheField
	p.AchievementsAndSignificance = request.AchievementsAndSignificance
	p.Link = request.Link
	p.Notes = request.Notes
	p.Keywords = request.Keywords
	p.Category = request.Category
}

func (s *Server) handleListPapers(w http.ResponseWriter, r *http.Request) {
	papers, err := s.store.LoadAll()
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, papers)
}

func (s *Server) handleCreatePaper(w http.ResponseWriter, r *http.Request) {
	var request paperRequest
	if err := decodeAndValidate(r, &request); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p := paper.New(request.PaperTitle, request.Authors, s.params, s.now())
	request.apply(&p)
	if err := s.store.Add(p); err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPaper(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePaper(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}

	var request paperRequest
	if err := decodeAndValidate(r, &request); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	request.apply(&p)
	if err := s.store.Update(p); err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePaper(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		respondError(w, r, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Package paper defines the flashpaper record: a structured research-paper
// summary with its embedded scheduling state.
package paper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/flashpapers/internal/srs"
)

// Paper is a research-paper summary ("flashpaper"). The JSON keys match
// the on-disk flashpapers.json format.
type Paper struct {
	ID         string `json:"id" yaml:"id"`
	PaperTitle string `json:"paper_title" yaml:"paper_title"`
	Authors    string `json:"authors" yaml:"authors"`

	BackgroundOfTheStudy            string `json:"background_of_the_study" yaml:"background_of_the_study,omitempty"`
	ResearchObjectivesAndHypothesis string `json:"research_objectives_and_hypothesis" yaml:"research_objectives_and_hypothesis,omitempty"`
	Methodology                     string `json:"methodology" yaml:"methodology,omitempty"`
	ResultsAndFindings              string `json:"results_and_findings" yaml:"results_and_findings,omitempty"`
	DiscussionAndInterpretation     string `json:"discussion_and_interpretation" yaml:"discussion_and_interpretation,omitempty"`
	ContributionsToTheField         string `json:"contributions_to_the_field" yaml:"contributions_to_the_field,omitempty"`
	AchievementsAndSignificance     string `json:"achievements_and_significance" yaml:"achievements_and_significance,omitempty"`

	Link     string   `json:"link,omitempty" yaml:"link,omitempty"`
	Notes    string   `json:"notes" yaml:"notes,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords,omitempty"`
	Category []string `json:"category" yaml:"category,omitempty"`

	AddedDate      time.Time  `json:"added_date" yaml:"added_date"`
	NextReviewDate *time.Time `json:"next_review_date" yaml:"next_review_date,omitempty"`
	ReviewCount    int        `json:"review_count" yaml:"review_count"`
	EaseFactor     float64    `json:"ease_factor" yaml:"ease_factor"`
	IntervalDays   int        `json:"interval_days" yaml:"interval_days"`
	LastReviewDate *time.Time `json:"last_review_date" yaml:"last_review_date,omitempty"`

	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`
}

// New creates a paper with a fresh ID and the initial scheduling state.
func New(title, authors string, params srs.Parameters, now time.Time) Paper {
	p := Paper{
		ID:         uuid.NewString(),
		PaperTitle: title,
		Authors:    authors,
		AddedDate:  now,
	}
	p.SetSchedulingState(srs.NewState(params, now))
	return p
}

// Validate checks the fields required for every record.
func (p Paper) Validate() error {
	if strings.TrimSpace(p.PaperTitle) == "" {
		return fmt.Errorf("paper title is required")
	}
	if strings.TrimSpace(p.Authors) == "" {
		return fmt.Errorf("authors is required")
	}
	return nil
}

// SchedulingState extracts the embedded srs.State. A nil next review date
// maps to the zero time, which the review selector treats as due.
func (p Paper) SchedulingState() srs.State {
	state := srs.State{
		EaseFactor:     p.EaseFactor,
		IntervalDays:   p.IntervalDays,
		ReviewCount:    p.ReviewCount,
		LastReviewedAt: p.LastReviewDate,
	}
	if p.NextReviewDate != nil {
		state.DueDate = *p.NextReviewDate
	}
	return state
}

// SetSchedulingState writes an srs.State back into the record's fields.
func (p *Paper) SetSchedulingState(state srs.State) {
	p.EaseFactor = state.EaseFactor
	p.IntervalDays = state.IntervalDays
	p.ReviewCount = state.ReviewCount
	p.LastReviewDate = state.LastReviewedAt
	if state.DueDate.IsZero() {
		p.NextReviewDate = nil
		return
	}
	due := state.DueDate
	p.NextReviewDate = &due
}

// Normalize re-clamps the scheduling fields through the engine's
// normalization, healing drift from manual file edits.
func (p Paper) Normalize(params srs.Parameters) Paper {
	state := p.SchedulingState().Normalize(params)
	p.EaseFactor = state.EaseFactor
	p.IntervalDays = state.IntervalDays
	return p
}

// IsDue reports whether the paper should be reviewed at the given time.
// Papers without a next review date are always due.
func (p Paper) IsDue(now time.Time) bool {
	if p.NextReviewDate == nil {
		return true
	}
	return !p.NextReviewDate.After(now)
}

// SearchableText joins every text field into one lowercase string for
// substring matching.
func (p Paper) SearchableText() string {
	parts := []string{
		p.PaperTitle,
		p.Authors,
		p.BackgroundOfTheStudy,
		p.ResearchObjectivesAndHypothesis,
		p.Methodology,
		p.ResultsAndFindings,
		p.DiscussionAndInterpretation,
		p.ContributionsToTheField,
		p.AchievementsAndSignificance,
		p.Notes,
		strings.Join(p.Keywords, " "),
		strings.Join(p.Category, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// HasCategory reports whether the paper belongs to the given category.
func (p Paper) HasCategory(category string) bool {
	for _, c := range p.Category {
		if c == category {
			return true
		}
	}
	return false
}

// HasKeyword reports whether the paper carries the given keyword.
func (p Paper) HasKeyword(keyword string) bool {
	for _, k := range p.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

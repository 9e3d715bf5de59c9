package srs

import "time"

// State is the scheduling state embedded in each paper record.
type State struct {
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	DueDate        time.Time  `json:"due_date"`
	ReviewCount    int        `json:"review_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"` // nil before the first review
}

// NewState returns the scheduling state for a freshly added paper:
// initial ease factor, minimum interval, zero reviews, due immediately.
func NewState(params Parameters, now time.Time) State {
	return State{
		EaseFactor:   params.InitialEaseFactor,
		IntervalDays: params.MinimumIntervalDays,
		DueDate:      now,
		ReviewCount:  0,
	}
}

// Normalize clamps persisted numeric drift back into the configured
// bounds. Stored state can violate the invariants after manual file
// edits; the store applies this on load so ApplyReview stays total.
func (s State) Normalize(params Parameters) State {
	if s.EaseFactor < MinEaseFactor {
		s.EaseFactor = MinEaseFactor
	}
	if s.IntervalDays < params.MinimumIntervalDays {
		s.IntervalDays = params.MinimumIntervalDays
	}
	if s.IntervalDays > params.MaximumIntervalDays {
		s.IntervalDays = params.MaximumIntervalDays
	}
	return s
}

// clone returns a copy of the state with pointer fields copied by value.
func (s State) clone() State {
	out := s
	if s.LastReviewedAt != nil {
		t := *s.LastReviewedAt
		out.LastReviewedAt = &t
	}
	return out
}

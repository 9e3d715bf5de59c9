// Package srs implements the spaced-repetition scheduling engine: a pure
// transformation from (state, grade, parameters, review time) to the next
// scheduling state. It performs no I/O; persistence belongs to the caller.
package srs

import (
	"fmt"
	"math"
	"time"
)

// ApplyReview computes the scheduling state after a review.
//
// The input state is never mutated. Validation happens before any
// computation: an unrecognized grade, inconsistent parameters, or a
// review timestamp earlier than the last review fail with the package
// sentinel errors and leave no observable change. A state that already
// violates the invariants (corrupted persisted data) is re-clamped
// rather than rejected.
func ApplyReview(state State, grade Grade, params Parameters, now time.Time) (State, error) {
	if !grade.IsValid() {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidGrade, int(grade))
	}
	if err := params.Validate(); err != nil {
		return State{}, err
	}
	if state.LastReviewedAt != nil && now.Before(*state.LastReviewedAt) {
		return State{}, fmt.Errorf("%w: %s before %s",
			ErrReviewOutOfOrder,
			now.Format(time.RFC3339),
			state.LastReviewedAt.Format(time.RFC3339))
	}

	next := state.clone().Normalize(params)

	next.EaseFactor = nextEaseFactor(next.EaseFactor, grade, params)
	next.IntervalDays = nextInterval(next.IntervalDays, next.EaseFactor, next.ReviewCount, grade, params)

	next.DueDate = now.AddDate(0, 0, next.IntervalDays)
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	next.ReviewCount++

	return next, nil
}

// nextEaseFactor applies the grade multiplier and clamps to the floor.
// Medium leaves the ease factor unchanged. There is no upper clamp:
// interval growth is bounded at the interval, not the ease factor.
func nextEaseFactor(ef float64, grade Grade, params Parameters) float64 {
	switch grade {
	case GradeHard:
		ef *= params.HardPenalty
	case GradeEasy:
		ef *= params.EasyBonus
	}
	return math.Max(ef, MinEaseFactor)
}

// nextInterval computes the next review interval in days, clamped to the
// configured range.
//
// Cold start: the first-ever review has no prior interval to multiply, so
// every grade resets to the minimum interval. Hard shrinks the interval by
// the hard penalty instead of growing it.
func nextInterval(lastInterval int, ef float64, reviewCount int, grade Grade, params Parameters) int {
	if reviewCount == 0 {
		return params.MinimumIntervalDays
	}

	var interval int
	if grade == GradeHard {
		interval = int(math.Round(float64(lastInterval) * params.HardPenalty))
	} else {
		interval = int(math.Round(float64(lastInterval) * ef))
	}

	if interval < params.MinimumIntervalDays {
		interval = params.MinimumIntervalDays
	}
	if interval > params.MaximumIntervalDays {
		interval = params.MaximumIntervalDays
	}
	return interval
}

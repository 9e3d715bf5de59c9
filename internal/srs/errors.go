package srs

import "errors"

// Sentinel errors for the srs package. Check with errors.Is.
var (
	// ErrInvalidGrade is returned when a review grade is not one of
	// Hard, Medium, or Easy.
	ErrInvalidGrade = errors.New("srs: invalid grade")

	// ErrInvalidParameters is returned when scheduling parameters are
	// inconsistent, for example minimum interval above maximum.
	ErrInvalidParameters = errors.New("srs: invalid parameters")

	// ErrReviewOutOfOrder is returned when a review timestamp precedes
	// the state's last reviewed timestamp.
	ErrReviewOutOfOrder = errors.New("srs: review timestamp precedes last review")
)

package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Grade represents the user's assessment of how well a paper was recalled.
type Grade int

const (
	GradeHard   Grade = iota + 1 // Recalled with significant difficulty.
	GradeMedium                  // Recalled with some effort.
	GradeEasy                    // Recalled effortlessly.
)

var (
	gradeNames  = [...]string{GradeHard: "hard", GradeMedium: "medium", GradeEasy: "easy"}
	gradeByName = map[string]Grade{
		"hard":   GradeHard,
		"medium": GradeMedium,
		"easy":   GradeEasy,
	}
)

var (
	_ fmt.Stringer             = Grade(0)
	_ encoding.TextMarshaler   = Grade(0)
	_ encoding.TextUnmarshaler = (*Grade)(nil)
	_ json.Marshaler           = Grade(0)
	_ json.Unmarshaler         = (*Grade)(nil)
)

// ParseGrade converts a string such as "easy" into a Grade.
// Matching is case-insensitive. Unknown tokens return ErrInvalidGrade.
func ParseGrade(s string) (Grade, error) {
	grade, ok := gradeByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	return grade, nil
}

// String returns the lowercase name of the grade.
// For invalid values it returns "Grade(n)".
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// IsValid reports whether g is one of the three recognized grades.
func (g Grade) IsValid() bool {
	return g >= GradeHard && g <= GradeEasy
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(text []byte) error {
	grade, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = grade
	return nil
}

// MarshalJSON implements json.Marshaler. Grade serializes as a JSON string.
func (g Grade) MarshalJSON() ([]byte, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrade, data)
	}
	return g.UnmarshalText([]byte(s))
}

// Package testutil provides shared test helpers for creating config
// files and paper fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/srs"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

// SetupTestConfig creates a minimal config file and all required
// directories for testing. Returns the path to the generated config
// file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"data", filepath.Join("data", "pdfs"), filepath.Join("data", "backups")}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`data:
  directory: %s
  file: flashpapers.json
  pdf_directory: %s
backup:
  directory: %s
  keep: 3
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "data", "pdfs"),
		filepath.Join(tmpDir, "data", "backups"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewTestStore opens a store backed by a temporary file.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "flashpapers.json"), srs.DefaultParameters)
	require.NoError(t, err)
	return s
}

// PaperOption configures optional fields when creating a paper fixture.
type PaperOption func(*paper.Paper)

// WithCategory sets the fixture's categories.
func WithCategory(categories ...string) PaperOption {
	return func(p *paper.Paper) {
		p.Category = categories
	}
}

// WithKeywords sets the fixture's keywords.
func WithKeywords(keywords ...string) PaperOption {
	return func(p *paper.Paper) {
		p.Keywords = keywords
	}
}

// WithNextReview schedules the fixture's next review date.
func WithNextReview(due time.Time) PaperOption {
	return func(p *paper.Paper) {
		p.NextReviewDate = &due
	}
}

// WithReviewHistory sets the fixture's scheduling counters.
func WithReviewHistory(reviewCount, intervalDays int, easeFactor float64, lastReviewed time.Time) PaperOption {
	return func(p *paper.Paper) {
		p.ReviewCount = reviewCount
		p.IntervalDays = intervalDays
		p.EaseFactor = easeFactor
		p.LastReviewDate = &lastReviewed
	}
}

// NewPaper creates a paper fixture with sensible defaults.
func NewPaper(t *testing.T, title string, opts ...PaperOption) paper.Paper {
	t.Helper()

	p := paper.New(title, "Test Author", srs.DefaultParameters, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	papers := []paper.Paper{
		{ID: "future", PaperTitle: "Not yet", NextReviewDate: datePtr(now.AddDate(0, 0, 5))},
		{ID: "overdue", PaperTitle: "Overdue", NextReviewDate: datePtr(now.AddDate(0, 0, -10))},
		{ID: "unscheduled", PaperTitle: "Never reviewed"},
		{ID: "today", PaperTitle: "Due now", NextReviewDate: datePtr(now)},
	}

	t.Run("returns due papers, most overdue first, unscheduled before all", func(t *testing.T) {
		got := Due(papers, now, 0)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"unscheduled", "overdue", "today"}, ids)
	})

	t.Run("limit caps the session size", func(t *testing.T) {
		got := Due(papers, now, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, "unscheduled", got[0].ID)
	})

	t.Run("nothing due", func(t *testing.T) {
		later := []paper.Paper{
			{ID: "future", NextReviewDate: datePtr(now.AddDate(0, 0, 5))},
		}
		assert.Empty(t, Due(later, now, 0))
	})
}

func TestCountDue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	papers := []paper.Paper{
		{ID: "a", NextReviewDate: datePtr(now.AddDate(0, 0, -1))},
		{ID: "b", NextReviewDate: datePtr(now.AddDate(0, 0, 1))},
		{ID: "c"},
	}
	assert.Equal(t, 2, CountDue(papers, now))
}

// Package analytics computes reading and review statistics over a
// paper collection.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/review"
)

// Overview holds collection wide totals.
type Overview struct {
	TotalPapers       int     // Papers in the collection
	DuePapers         int     // Papers due for review right now
	ReviewedPapers    int     // Papers reviewed at least once
	NeverReviewed     int     // Papers never reviewed
	TotalReviews      int     // Review events across all papers
	AverageEaseFactor float64 // Mean ease factor, 0 when the collection is empty
	AverageInterval   float64 // Mean interval in days, 0 when the collection is empty
}

// CategoryStatistics holds per category counts.
type CategoryStatistics struct {
	Category     string
	PaperCount   int
	DueCount     int
	TotalReviews int
}

// UpcomingDay is the review load for a single future day.
type UpcomingDay struct {
	Date  time.Time
	Count int
}

// MonthlyActivity counts papers added and reviews recorded per month.
type MonthlyActivity struct {
	Period      string // "2026-03"
	AddedPapers int
	Reviews     int
}

// CalculateOverview aggregates the whole collection at the given time.
func CalculateOverview(papers []paper.Paper, now time.Time) Overview {
	overview := Overview{
		TotalPapers: len(papers),
		DuePapers:   review.CountDue(papers, now),
	}

	var easeSum, intervalSum float64
	for _, p := range papers {
		overview.TotalReviews += p.ReviewCount
		if p.ReviewCount > 0 {
			overview.ReviewedPapers++
		} else {
			overview.NeverReviewed++
		}
		easeSum += p.EaseFactor
		intervalSum += float64(p.IntervalDays)
	}

	if len(papers) > 0 {
		overview.AverageEaseFactor = easeSum / float64(len(papers))
		overview.AverageInterval = intervalSum / float64(len(papers))
	}
	return overview
}

// CalculateCategoryStatistics aggregates per category, sorted by paper
// count descending and then by name. Papers without a category are
// grouped under "uncategorized".
func CalculateCategoryStatistics(papers []paper.Paper, now time.Time) []CategoryStatistics {
	byCategory := make(map[string]*CategoryStatistics)
	for _, p := range papers {
		categories := p.Category
		if len(categories) == 0 {
			categories = []string{"uncategorized"}
		}
		for _, category := range categories {
			stats := byCategory[category]
			if stats == nil {
				stats = &CategoryStatistics{Category: category}
				byCategory[category] = stats
			}
			stats.PaperCount++
			stats.TotalReviews += p.ReviewCount
			if p.IsDue(now) {
				stats.DueCount++
			}
		}
	}

	results := make([]CategoryStatistics, 0, len(byCategory))
	for _, stats := range byCategory {
		results = append(results, *stats)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].PaperCount != results[j].PaperCount {
			return results[i].PaperCount > results[j].PaperCount
		}
		return results[i].Category < results[j].Category
	})
	return results
}

// CalculateUpcomingReviews returns the review load for each of the next
// days, starting with the day after now. Overdue and unscheduled papers
// are not included, they are already due.
func CalculateUpcomingReviews(papers []paper.Paper, now time.Time, days int) []UpcomingDay {
	if days <= 0 {
		return nil
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	upcoming := make([]UpcomingDay, days)
	for i := range upcoming {
		upcoming[i].Date = start.AddDate(0, 0, i+1)
	}

	for _, p := range papers {
		if p.NextReviewDate == nil {
			continue
		}
		due := p.NextReviewDate.In(now.Location())
		// Compare calendar dates; a duration in hours misbins papers
		// on days shortened or lengthened by a DST transition.
		for i := range upcoming {
			if sameDay(upcoming[i].Date, due) {
				upcoming[i].Count++
				break
			}
		}
	}
	return upcoming
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// PerformanceMetrics summarizes review effort across the collection.
type PerformanceMetrics struct {
	AverageReviewsPerPaper float64 // Mean review count, 0 when the collection is empty
	RetentionRate          float64 // Percent of papers reviewed at least once
	ReviewStreak           int     // Consecutive days with reviews, ending today
	MostReviewedTitle      string
	MostReviewedCount      int
}

// CalculateReviewStreak counts consecutive days with at least one
// review, walking backwards from today. Only each paper's last review
// date is persisted, so earlier reviews of a re-reviewed paper cannot
// extend the streak.
func CalculateReviewStreak(papers []paper.Paper, now time.Time) int {
	reviewedDays := make(map[string]bool)
	for _, p := range papers {
		if p.LastReviewDate == nil {
			continue
		}
		reviewedDays[p.LastReviewDate.In(now.Location()).Format("2006-01-02")] = true
	}

	streak := 0
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for reviewedDays[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CalculateRetentionRate returns the percentage of papers reviewed at
// least once, rounded to two decimals.
func CalculateRetentionRate(papers []paper.Paper) float64 {
	if len(papers) == 0 {
		return 0
	}
	reviewed := 0
	for _, p := range papers {
		if p.ReviewCount > 0 {
			reviewed++
		}
	}
	return math.Round(float64(reviewed)/float64(len(papers))*10000) / 100
}

// CalculatePerformanceMetrics aggregates the review effort metrics.
func CalculatePerformanceMetrics(papers []paper.Paper, now time.Time) PerformanceMetrics {
	metrics := PerformanceMetrics{
		RetentionRate: CalculateRetentionRate(papers),
		ReviewStreak:  CalculateReviewStreak(papers, now),
	}
	if len(papers) == 0 {
		return metrics
	}

	totalReviews := 0
	mostReviewed := papers[0]
	for _, p := range papers {
		totalReviews += p.ReviewCount
		if p.ReviewCount > mostReviewed.ReviewCount {
			mostReviewed = p
		}
	}
	metrics.AverageReviewsPerPaper = float64(totalReviews) / float64(len(papers))
	metrics.MostReviewedTitle = mostReviewed.PaperTitle
	metrics.MostReviewedCount = mostReviewed.ReviewCount
	return metrics
}

// CalculateMonthlyActivity groups added papers and review events by
// month, newest first. Review events are attributed to the month of the
// last review, the file format keeps no per-event history.
func CalculateMonthlyActivity(papers []paper.Paper) []MonthlyActivity {
	byPeriod := make(map[string]*MonthlyActivity)
	ensure := func(period string) *MonthlyActivity {
		activity := byPeriod[period]
		if activity == nil {
			activity = &MonthlyActivity{Period: period}
			byPeriod[period] = activity
		}
		return activity
	}

	for _, p := range papers {
		if !p.AddedDate.IsZero() {
			period := fmt.Sprintf("%d-%02d", p.AddedDate.Year(), int(p.AddedDate.Month()))
			ensure(period).AddedPapers++
		}
		if p.LastReviewDate != nil {
			period := fmt.Sprintf("%d-%02d", p.LastReviewDate.Year(), int(p.LastReviewDate.Month()))
			ensure(period).Reviews += p.ReviewCount
		}
	}

	results := make([]MonthlyActivity, 0, len(byPeriod))
	for _, activity := range byPeriod {
		results = append(results, *activity)
	}
	// Sort by period descending (newest first)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Period > results[j].Period
	})
	return results
}

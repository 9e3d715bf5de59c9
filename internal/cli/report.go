package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/analytics"
	"github.com/at-ishikawa/flashpapers/internal/search"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

// RunSearch writes the papers matching the filters as a table.
func RunSearch(paperStore *store.Store, writer io.Writer, filters search.Filters) error {
	papers, err := paperStore.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load papers: %w", err)
	}

	results := search.Search(papers, filters)
	if len(results) > 0 {
		fmt.Fprintf(writer, "Found %d papers.\n\n", len(results))
	}
	PrintPapers(writer, results, time.Now())
	return nil
}

// RunAnalyticsReport displays collection and review statistics
func RunAnalyticsReport(paperStore *store.Store, writer io.Writer, upcomingDays int) error {
	papers, err := paperStore.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load papers: %w", err)
	}

	now := time.Now()
	overview := analytics.CalculateOverview(papers, now)

	// Print header
	fmt.Fprintln(writer, "Flashpapers Statistics Report")
	fmt.Fprintln(writer, "=============================")
	fmt.Fprintln(writer)
	fmt.Fprintf(writer, "Total papers:       %d\n", overview.TotalPapers)
	fmt.Fprintf(writer, "Due for review:     %d\n", overview.DuePapers)
	fmt.Fprintf(writer, "Reviewed at least once: %d\n", overview.ReviewedPapers)
	fmt.Fprintf(writer, "Never reviewed:     %d\n", overview.NeverReviewed)
	fmt.Fprintf(writer, "Total reviews:      %d\n", overview.TotalReviews)
	if overview.TotalPapers > 0 {
		fmt.Fprintf(writer, "Average ease factor: %.2f\n", overview.AverageEaseFactor)
		fmt.Fprintf(writer, "Average interval:    %.1f days\n", overview.AverageInterval)
	}

	metrics := analytics.CalculatePerformanceMetrics(papers, now)
	if overview.TotalPapers > 0 {
		fmt.Fprintln(writer)
		fmt.Fprintf(writer, "Retention rate:     %.2f%%\n", metrics.RetentionRate)
		fmt.Fprintf(writer, "Review streak:      %d days\n", metrics.ReviewStreak)
		fmt.Fprintf(writer, "Reviews per paper:  %.2f\n", metrics.AverageReviewsPerPaper)
		if metrics.MostReviewedCount > 0 {
			fmt.Fprintf(writer, "Most reviewed:      %s (%d reviews)\n",
				metrics.MostReviewedTitle, metrics.MostReviewedCount)
		}
	}

	categories := analytics.CalculateCategoryStatistics(papers, now)
	if len(categories) > 0 {
		fmt.Fprintln(writer)
		fmt.Fprintf(writer, "%-24s  %-8s  %-8s  %-8s\n", "Category", "Papers", "Due", "Reviews")
		fmt.Fprintf(writer, "%-24s  %-8s  %-8s  %-8s\n", "--------", "------", "---", "-------")
		for _, category := range categories {
			fmt.Fprintf(writer, "%-24s  %-8d  %-8d  %-8d\n",
				category.Category, category.PaperCount, category.DueCount, category.TotalReviews)
		}
	}

	if upcomingDays > 0 {
		upcoming := analytics.CalculateUpcomingReviews(papers, now, upcomingDays)
		fmt.Fprintln(writer)
		fmt.Fprintf(writer, "Upcoming reviews (next %d days)\n", upcomingDays)
		for _, day := range upcoming {
			fmt.Fprintf(writer, "%s  %d\n", day.Date.Format("2006-01-02"), day.Count)
		}
	}

	activity := analytics.CalculateMonthlyActivity(papers)
	if len(activity) > 0 {
		fmt.Fprintln(writer)
		fmt.Fprintf(writer, "%-10s  %-8s  %-8s\n", "Period", "Added", "Reviews")
		fmt.Fprintf(writer, "%-10s  %-8s  %-8s\n", "------", "-----", "-------")
		for _, month := range activity {
			fmt.Fprintf(writer, "%-10s  %-8d  %-8d\n", month.Period, month.AddedPapers, month.Reviews)
		}
	}

	return nil
}

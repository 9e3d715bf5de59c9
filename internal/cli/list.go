package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

// PrintPapers writes a one line per paper table.
func PrintPapers(writer io.Writer, papers []paper.Paper, now time.Time) {
	if len(papers) == 0 {
		fmt.Fprintln(writer, "No papers found.")
		return
	}

	fmt.Fprintf(writer, "%-38s  %-50s  %-12s  %-7s\n", "ID", "Title", "Next review", "Reviews")
	for _, p := range papers {
		title := p.PaperTitle
		// Truncate by runes, a byte slice can split a multi-byte
		// character in the title.
		if runes := []rune(title); len(runes) > 50 {
			title = string(runes[:47]) + "..."
		}

		nextReview := "due now"
		if p.NextReviewDate != nil {
			if p.IsDue(now) {
				nextReview = "overdue"
			} else {
				nextReview = p.NextReviewDate.Format("2006-01-02")
			}
		}
		fmt.Fprintf(writer, "%-38s  %-50s  %-12s  %-7d\n", p.ID, title, nextReview, p.ReviewCount)
	}
}

// PrintPaper writes the whole record in a readable layout.
func PrintPaper(writer io.Writer, p paper.Paper) {
	fmt.Fprintf(writer, "ID:       %s\n", p.ID)
	fmt.Fprintf(writer, "Title:    %s\n", p.PaperTitle)
	fmt.Fprintf(writer, "Authors:  %s\n", p.Authors)
	if p.Link != "" {
		fmt.Fprintf(writer, "Link:     %s\n", p.Link)
	}
	if len(p.Category) > 0 {
		fmt.Fprintf(writer, "Category: %v\n", p.Category)
	}
	if len(p.Keywords) > 0 {
		fmt.Fprintf(writer, "Keywords: %v\n", p.Keywords)
	}
	if p.PDFPath != "" {
		fmt.Fprintf(writer, "PDF:      %s\n", p.PDFPath)
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Background of the Study", p.BackgroundOfTheStudy},
		{"Research Objectives and Hypothesis", p.ResearchObjectivesAndHypothesis},
		{"Methodology", p.Methodology},
		{"Results and Findings", p.ResultsAndFindings},
		{"Discussion and Interpretation", p.DiscussionAndInterpretation},
		{"Contributions to the Field", p.ContributionsToTheField},
		{"Achievements and Significance", p.AchievementsAndSignificance},
		{"Notes", p.Notes},
	}
	for _, section := range sections {
		if section.body == "" {
			continue
		}
		fmt.Fprintf(writer, "\n%s\n%s\n", section.title, section.body)
	}

	fmt.Fprintf(writer, "\nReviews:  %d, ease factor %.2f, interval %d days\n",
		p.ReviewCount, p.EaseFactor, p.IntervalDays)
	if p.NextReviewDate != nil {
		fmt.Fprintf(writer, "Next review: %s\n", p.NextReviewDate.Format("2006-01-02"))
	}
}

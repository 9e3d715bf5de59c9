package pdf

import (
	"fmt"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

// ExportSummary renders the paper's summary sections as a PDF at the
// given path.
func ExportSummary(p paper.Paper, outPath string) error {
	if !strings.HasSuffix(outPath, ".pdf") {
		return fmt.Errorf("output file must have .pdf extension: %s", outPath)
	}

	content := summaryMarkdown(p)

	renderer := mdtopdf.NewPdfRenderer("P", "A4", outPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(content)); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}

func summaryMarkdown(p paper.Paper) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("# %s\n\n", p.PaperTitle))
	builder.WriteString(fmt.Sprintf("**Authors:** %s\n\n", p.Authors))
	if p.Link != "" {
		builder.WriteString(fmt.Sprintf("**Link:** %s\n\n", p.Link))
	}
	if len(p.Category) > 0 {
		builder.WriteString(fmt.Sprintf("**Categories:** %s\n\n", strings.Join(p.Category, ", ")))
	}
	if len(p.Keywords) > 0 {
		builder.WriteString(fmt.Sprintf("**Keywords:** %s\n\n", strings.Join(p.Keywords, ", ")))
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
		builder.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", section.title, section.body))
	}
	return builder.String()
}

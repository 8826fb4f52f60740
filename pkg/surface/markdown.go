package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/rbui/rbui/pkg/scoring"
)

// MarkdownRenderer produces a Markdown report suitable for inspection
// planning documents.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	_, err := io.WriteString(w, BuildMarkdownReport(result))
	return err
}

// BuildMarkdownReport formats a ScoreResult as a Markdown document.
func BuildMarkdownReport(result *scoring.ScoreResult) string {
	var sb strings.Builder

	name := result.PlatformName
	if name == "" {
		name = "Platform"
	}
	fmt.Fprintf(&sb, "## %s: LOF %d, risk %s\n\n", name, result.LOFRanking, orUndefined(string(result.RiskRanking)))
	fmt.Fprintf(&sb, "Assessed %s. Total score **%.0f**", result.AssessmentDate.Format("2006-01-02"), result.TotalScore)
	if result.RSROverrideScore != 0 {
		fmt.Fprintf(&sb, " including RSR override score %.0f", result.RSROverrideScore)
	}
	sb.WriteString(".\n\n")

	// Sub-scores
	sb.WriteString("### Sub-scores\n\n")
	sb.WriteString("| Category | Component | Score | Range |\n|----------|-----------|-------|-------|\n")
	for _, s := range result.Breakdown {
		value := fmt.Sprintf("%.0f", s.Value)
		switch {
		case !s.Available:
			value = "unavailable"
		case s.Overridden:
			value = "0 (override)"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %.0f-%.0f |\n", s.Category, s.Name, value, s.Min, s.Max)
	}
	for _, ct := range result.Categories {
		fmt.Fprintf(&sb, "| **%s** | total | **%.0f** | |\n", ct.Category, ct.Score)
	}
	sb.WriteString("\n")

	// Consequence
	sb.WriteString("### Consequence\n\n")
	fmt.Fprintf(&sb, "- Environmental category: %s\n", result.EnvironmentalCategory)
	fmt.Fprintf(&sb, "- Economic category: %s\n", result.EconomicCategory)
	fmt.Fprintf(&sb, "- Final consequence category: %s\n", orUndefined(string(result.FinalConsequence)))
	fmt.Fprintf(&sb, "- Exposure level: %s\n", orUndefined(string(result.ExposureLevel)))
	if result.ExposureLevel != "" {
		fmt.Fprintf(&sb, "- Survey intervals (years): level 1 %s, level 2 %s, level 3 %s\n",
			result.SurveyIntervals[0], result.SurveyIntervals[1], result.SurveyIntervals[2])
	}
	fmt.Fprintf(&sb, "- Economic impact: %sM\n", result.EconomicImpact.ImpactMillions.StringFixed(3))
	if result.InspectionInterval > 0 {
		fmt.Fprintf(&sb, "- Recommended underwater inspection interval: **%d years**\n", result.InspectionInterval)
	}
	sb.WriteString("\n")

	// Plan
	sb.WriteString("### Inspection plan\n\n| Year | Inspection |\n|------|------------|\n")
	for _, e := range result.Schedule {
		fmt.Fprintf(&sb, "| %d | %s |\n", e.Year, e.Level)
	}

	if len(result.Issues) > 0 {
		sb.WriteString("\n### Record issues\n\n")
		for _, is := range result.Issues {
			fmt.Fprintf(&sb, "- `%s`: %s\n", is.Field, is.Message)
		}
	}

	if len(result.Unavailable) > 0 {
		fmt.Fprintf(&sb, "\n**Not derived:** %s\n", strings.Join(result.Unavailable, ", "))
	}

	return sb.String()
}

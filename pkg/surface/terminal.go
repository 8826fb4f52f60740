package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rbui/rbui/pkg/scoring"
)

// TerminalRenderer renders ScoreResult as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func riskColor(r scoring.RiskRanking) string {
	if noColor() {
		return ""
	}
	switch r {
	case scoring.RiskVeryLow, scoring.RiskLow:
		return colorGreen
	case scoring.RiskMedium:
		return colorYellow
	case scoring.RiskHigh, scoring.RiskVeryHigh:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

var categoryLabels = map[scoring.Category]string{
	scoring.CategoryRobustness: "Robustness",
	scoring.CategoryCondition:  "Condition",
	scoring.CategoryLoading:    "Loading",
}

// orUndefined substitutes a marker for classifications that could not be made.
func orUndefined(s string) string {
	if s == "" {
		return "undefined"
	}
	return s
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	rc := riskColor(result.RiskRanking)

	// Header
	name := result.PlatformName
	if name == "" {
		name = "platform"
	}
	fmt.Fprintf(w, "%s\n",
		bold(fmt.Sprintf("RBUI: %s, LOF %d, risk %s, score %.0f",
			name, result.LOFRanking, colored(orUndefined(string(result.RiskRanking)), rc), result.TotalScore)))
	fmt.Fprintf(w, "%s\n\n", dim("assessed "+result.AssessmentDate.Format("2006-01-02")))

	// Sub-scores by category
	for _, ct := range result.Categories {
		status := ""
		if !ct.Complete {
			status = " " + colored("(incomplete)", colorYellow)
		}
		fmt.Fprintf(w, "%s %.0f%s\n", bold(categoryLabels[ct.Category]+":"), ct.Score, status)
		for _, s := range result.Breakdown {
			if s.Category != ct.Category {
				continue
			}
			fmt.Fprintf(w, "  %-30s %s\n", s.Name, subScoreText(s))
		}
		fmt.Fprintln(w)
	}

	if result.RSROverrideScore != 0 {
		fmt.Fprintf(w, "RSR override score: %.0f\n\n", result.RSROverrideScore)
	}

	if len(result.MarineGrowthByElevation) > 0 {
		tiers := make([]string, len(result.MarineGrowthByElevation))
		for i, v := range result.MarineGrowthByElevation {
			tiers[i] = fmt.Sprintf("%.0f", v)
		}
		fmt.Fprintf(w, "Marine growth by elevation: %s\n\n", strings.Join(tiers, ", "))
	}

	// Consequence
	fmt.Fprintln(w, "Consequence:")
	fmt.Fprintf(w, "  environmental %s, economic %s, final %s\n",
		result.EnvironmentalCategory, result.EconomicCategory, orUndefined(string(result.FinalConsequence)))
	if result.EnvironmentalConsequence != nil {
		fmt.Fprintf(w, "  environmental amount %s bbl\n", result.EnvironmentalConsequence.StringFixed(2))
	}
	fmt.Fprintf(w, "  economic impact %sM", result.EconomicImpact.ImpactMillions.StringFixed(3))
	if result.EconomicImpact.ReplacementFavored {
		fmt.Fprint(w, " (replacement favored)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  exposure %s", orUndefined(string(result.ExposureLevel)))
	if result.ExposureLevel != "" {
		fmt.Fprintf(w, ", survey intervals %s / %s / %s years",
			result.SurveyIntervals[0], result.SurveyIntervals[1], result.SurveyIntervals[2])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	if result.InspectionInterval > 0 {
		fmt.Fprintf(w, "Recommended underwater inspection interval: %s\n\n",
			colored(fmt.Sprintf("%d years", result.InspectionInterval), rc))
	}

	RenderSchedule(w, result.Schedule)

	if len(result.Issues) > 0 {
		fmt.Fprintln(w, "Record issues:")
		for _, is := range result.Issues {
			fmt.Fprintf(w, "  %s %s\n", colored("●", colorYellow), is)
		}
		fmt.Fprintln(w)
	}

	if len(result.Unavailable) > 0 {
		fmt.Fprintf(w, "%s %s\n\n", colored("Not derived:", colorRed), strings.Join(result.Unavailable, ", "))
	}

	return nil
}

func subScoreText(s scoring.SubScore) string {
	switch {
	case !s.Available:
		return colored("unavailable", colorRed) + " " + dim(s.Error)
	case s.Overridden:
		return dim("0 (RSR override)")
	default:
		return fmt.Sprintf("%.0f %s", s.Value, dim(fmt.Sprintf("[%.0f-%.0f]", s.Min, s.Max)))
	}
}

// RenderSchedule writes the ten-year inspection plan.
func RenderSchedule(w io.Writer, plan []scoring.ScheduleEntry) {
	fmt.Fprintln(w, "Inspection plan:")
	for _, e := range plan {
		label := e.Level
		if label == "" {
			label = dim("unavailable")
		} else if label == "No Inspection" {
			label = dim(label)
		}
		fmt.Fprintf(w, "  %d  %s\n", e.Year, label)
	}
	fmt.Fprintln(w)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbui/rbui/pkg/config"
	"github.com/rbui/rbui/pkg/scoring"
	"github.com/rbui/rbui/pkg/surface"
)

func newScoreCmd() *cobra.Command {
	var (
		asOf      string
		outputFmt string
		save      bool
		reportDir string
	)

	cmd := &cobra.Command{
		Use:   "score <platform.json>...",
		Short: "Score one or more platform records",
		Long: `Computes the LOF sub-scores, total and ranking, consequence and risk
classification, recommended inspection interval and ten-year plan for each
platform record. Use "-" to read a record from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			renderer, err := surface.ForFormat(outputFmt)
			if err != nil {
				return err
			}

			cfg := loadConfig(cmd)
			engine := newEngine(cmd, cfg)
			dir := firstNonEmpty(reportDir, cfg.Reports.LocalDir, config.ReportDir())

			for _, path := range args {
				p, err := readPlatform(cmd, path)
				if err != nil {
					return err
				}
				result := engine.ScorePlatform(p, date)
				if err := renderer.Render(cmd.OutOrStdout(), result); err != nil {
					return fmt.Errorf("rendering: %w", err)
				}
				if save {
					saveScoreResult(cmd, dir, result)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Assessment date YYYY-MM-DD (default: the record's assessment date)")
	cmd.Flags().StringVar(&outputFmt, "format", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&save, "save", false, "Also write the JSON result to the report directory")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "Report directory for --save")

	return cmd
}

// saveScoreResult writes a result as JSON under dir, named by platform and
// assessment date.
func saveScoreResult(cmd *cobra.Command, dir string, result *scoring.ScoreResult) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to create report dir: %v\n", err)
		return
	}

	wrapped := struct {
		*scoring.ScoreResult
		ScoredAt string `json:"scored_at"`
	}{
		ScoreResult: result,
		ScoredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to marshal score result: %v\n", err)
		return
	}

	name := firstNonEmpty(result.PlatformID, result.PlatformName, "platform")
	path := filepath.Join(dir, name+"_"+result.AssessmentDate.Format("20060102")+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save score result: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Score saved: %s\n", path)
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbui/rbui/pkg/config"
	"github.com/rbui/rbui/pkg/platform"
	"github.com/rbui/rbui/pkg/scoring"
)

// loadConfig reads --config, or the nearest .rbui/config.yaml, falling back
// to defaults.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		wd, err := os.Getwd()
		if err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newEngine builds a scoring engine with the configured weights.
func newEngine(cmd *cobra.Command, cfg *config.Config) *scoring.Engine {
	w := scoring.Defaults().WithOverrides(cfg.Scoring.Weights)
	if cfg.Scoring.DefaultInspectionInterval > 0 {
		w.DefaultInspectionInterval = cfg.Scoring.DefaultInspectionInterval
	}

	var out io.Writer = io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		out = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return scoring.NewEngine(scoring.CalculatorsWithWeights(w), scoring.WithLogger(logger))
}

// readPlatform loads a platform record from a file, or stdin for "-".
func readPlatform(cmd *cobra.Command, path string) (*platform.Platform, error) {
	if path == "-" {
		return platform.Decode(cmd.InOrStdin())
	}
	return platform.Load(path)
}

// parseAsOf parses an optional YYYY-MM-DD assessment date.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Package main provides the rbui CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rbui",
		Short: "Risk-based underwater inspection scoring for offshore platforms",
		Long: `rbui scores fixed offshore platforms for structural likelihood of failure,
classifies consequence and risk, and projects a ten-year underwater
inspection plan.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: search for .rbui/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log unavailable sub-scores to stderr")

	rootCmd.AddCommand(
		newScoreCmd(),
		newScheduleCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

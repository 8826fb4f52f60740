package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbui/rbui/pkg/surface"
)

func newScheduleCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "schedule <platform.json>",
		Short: "Show next inspection dates and the ten-year inspection plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			p, err := readPlatform(cmd, args[0])
			if err != nil {
				return err
			}

			result := newEngine(cmd, loadConfig(cmd)).ScorePlatform(p, date)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Next inspection:")
			for i, d := range result.NextInspectionDates {
				when := "not scheduled"
				if d != nil {
					when = d.Format("2006-01-02")
				}
				fmt.Fprintf(out, "  Level %d  %s\n", i+1, when)
			}
			fmt.Fprintln(out)
			surface.RenderSchedule(out, result.Schedule)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Assessment date YYYY-MM-DD (default: the record's assessment date)")
	return cmd
}

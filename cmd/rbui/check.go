package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <platform.json>...",
		Short: "Validate platform records",
		Long: `Decodes each record and reports violated record invariants. With --strict,
any issue makes the command fail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			total := 0
			for _, path := range args {
				p, err := readPlatform(cmd, path)
				if err != nil {
					return err
				}
				issues := p.Check()
				total += len(issues)
				if len(issues) == 0 {
					fmt.Fprintf(out, "%s: ok\n", path)
					continue
				}
				fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(issues))
				for _, is := range issues {
					fmt.Fprintf(out, "  %s\n", is)
				}
			}
			if strict && total > 0 {
				return fmt.Errorf("%d record issue(s) found", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any issue is found")
	return cmd
}

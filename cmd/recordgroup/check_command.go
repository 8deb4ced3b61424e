package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordgroup/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run preflight checks against the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// A broken log directory must still reach the checks below.
			logger, err := ctx.ensureLogger()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			results := preflight.RunAll(cmd.Context(), cfg, logger)
			if jsonOut {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				colorize := shouldColorize(cmd.OutOrStdout())
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, statusCell(r.Passed, colorize), r.Detail})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			}

			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d preflight check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

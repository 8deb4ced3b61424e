package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"recordgroup/internal/execctx"
	"recordgroup/internal/logging"
	"recordgroup/internal/preflight"
)

type exerciseOutput struct {
	Executions []preflight.ExecutionReport `json:"executions"`
	IDs        int                         `json:"ids_per_execution"`
	Elapsed    string                      `json:"elapsed"`
	Passed     bool                        `json:"passed"`
}

func newExerciseCommand(ctx *commandContext) *cobra.Command {
	var executions int
	var ids int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Push and pop group IDs from concurrent executions and verify isolation",
		RunE: func(cmd *cobra.Command, args []string) error {
			assoc, err := ctx.association()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx := execctx.New(cmd.Context(), "exercise")
			start := time.Now()
			reports, err := preflight.Exercise(runCtx, assoc, executions, ids)
			if err != nil {
				return fmt.Errorf("exercise: %w", err)
			}
			elapsed := time.Since(start)

			passed := true
			for _, r := range reports {
				if !r.OK() {
					passed = false
				}
			}
			logging.WithContext(runCtx, logger).Debug("exercise finished",
				logging.Int("executions", executions),
				logging.Int("ids", ids),
				logging.Duration("elapsed", elapsed),
				logging.Bool("passed", passed),
			)

			if jsonOut {
				if err := writeJSON(cmd, exerciseOutput{
					Executions: reports,
					IDs:        ids,
					Elapsed:    elapsed.Round(time.Microsecond).String(),
					Passed:     passed,
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderExerciseTable(reports, shouldColorize(cmd.OutOrStdout())))
			}

			if !passed {
				return errors.New("exercise: isolation violated")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&executions, "contexts", preflight.DefaultExecutions, "Number of concurrent executions")
	cmd.Flags().IntVar(&ids, "ids", preflight.DefaultIDs, "Group IDs pushed by each execution")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderExerciseTable(reports []preflight.ExecutionReport, colorize bool) string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Name,
			r.ID,
			strconv.Itoa(r.Pushed),
			strconv.Itoa(r.Popped),
			statusCell(r.OK(), colorize),
			r.Problem(),
		})
	}
	return renderTable(
		[]string{"Execution", "ID", "Pushed", "Popped", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
	)
}

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"recordgroup/internal/execctx"
	"recordgroup/internal/groupid"
	"recordgroup/internal/logging"
)

func newTraceCommand(ctx *commandContext) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "trace <group-id>...",
		Short: "Push group IDs on one execution, then peek and pop them with trace logging",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  "trace",
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("init trace logger: %w", err)
			}

			assoc := groupid.New(groupid.WithLogger(logger))
			execCtx := execctx.New(cmd.Context(), name)
			defer assoc.Release(execCtx)

			runTraceSession(execCtx, assoc, args, cmd.OutOrStdout())
			logging.WithContext(execCtx, logger).Debug("trace session finished",
				logging.Int("pushed", len(args)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "trace", "Execution name shown in trace records")
	return cmd
}

// runTraceSession pushes ids in order, then alternates peek and pop until the
// stack is exhausted, finishing with one absent pop.
func runTraceSession(ctx context.Context, assoc *groupid.Association, ids []string, out io.Writer) {
	for _, id := range ids {
		assoc.PushGroupID(ctx, id)
		fmt.Fprintf(out, "push %s depth=%d\n", displayID(id), assoc.Depth(ctx))
	}
	for {
		top, ok := assoc.PeekGroupID(ctx)
		if !ok {
			break
		}
		fmt.Fprintf(out, "peek %s\n", displayID(top))
		popped, _ := assoc.PopGroupID(ctx)
		fmt.Fprintf(out, "pop  %s depth=%d\n", displayID(popped), assoc.Depth(ctx))
	}
	if _, ok := assoc.PopGroupID(ctx); !ok {
		fmt.Fprintln(out, "pop  <none>")
	}
}

func displayID(id string) string {
	if id == "" {
		return `""`
	}
	return id
}

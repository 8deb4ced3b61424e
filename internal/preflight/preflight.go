package preflight

import (
	"context"
	"log/slog"

	"recordgroup/internal/config"
	"recordgroup/internal/groupid"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Default isolation probe size: two executions with a thousand IDs each.
const (
	DefaultExecutions = 2
	DefaultIDs        = 1000
)

// RunAll executes all applicable preflight checks for the given config. The
// isolation probe runs against a private Association so it never disturbs
// live stacks; logger is only consulted for its trace level.
func RunAll(ctx context.Context, cfg *config.Config, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if cfg.Logging.Dir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Dir))
	}

	results = append(results, CheckTraceSink(ctx, cfg, logger))
	results = append(results, CheckIsolation(ctx, groupid.New(), DefaultExecutions, DefaultIDs))

	return results
}

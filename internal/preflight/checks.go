package preflight

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"recordgroup/internal/config"
	"recordgroup/internal/groupid"
	"recordgroup/internal/logging"
)

// CheckIsolation runs the isolation probe and folds it into a single result.
func CheckIsolation(ctx context.Context, assoc *groupid.Association, executions, ids int) Result {
	const name = "Execution isolation"

	reports, err := Exercise(ctx, assoc, executions, ids)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("probe aborted (%v)", err)}
	}
	for _, r := range reports {
		if !r.OK() {
			return Result{Name: name, Detail: fmt.Sprintf("%s: %s", r.Name, r.Problem())}
		}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%d executions x %d ids returned in reverse order", executions, ids),
	}
}

// CheckTraceSink reports whether group ID operations will emit trace records.
func CheckTraceSink(ctx context.Context, cfg *config.Config, logger *slog.Logger) Result {
	const name = "Trace sink"

	switch {
	case cfg != nil && !cfg.Trace.Enabled:
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	case logger == nil:
		return Result{Name: name, Detail: "enabled in config but no logger configured"}
	case !logger.Enabled(ctx, logging.LevelTrace):
		return Result{Name: name, Detail: "enabled in config but logger drops trace level"}
	default:
		return Result{Name: name, Passed: true, Detail: "Enabled"}
	}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

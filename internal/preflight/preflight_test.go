package preflight

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordgroup/internal/config"
	"recordgroup/internal/execctx"
	"recordgroup/internal/groupid"
	"recordgroup/internal/logging"
	"recordgroup/internal/testsupport"
)

// cancelAfterCtx reports context.Canceled once Err has been called more than
// allowed times.
type cancelAfterCtx struct {
	context.Context
	allowed int64
	calls   atomic.Int64
}

func (c *cancelAfterCtx) Err() error {
	if c.calls.Add(1) > c.allowed {
		return context.Canceled
	}
	return nil
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	assert.True(t, result.Passed, result.Detail)
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	assert.False(t, result.Passed)
	assert.Contains(t, result.Detail, "does not exist")
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	result := CheckDirectoryAccess("test", f)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Detail, "is not a directory")
}

func TestExerciseTwoExecutions(t *testing.T) {
	assoc := groupid.New()
	reports, err := Exercise(context.Background(), assoc, 2, 1000)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, r := range reports {
		assert.True(t, r.OK(), "%s: %s", r.Name, r.Problem())
		assert.Equal(t, 1000, r.Pushed, r.Name)
		assert.Equal(t, 1000, r.Popped, r.Name)
	}
	assert.NotEqual(t, reports[0].ID, reports[1].ID)
	assert.Empty(t, assoc.Executions(), "stacks should be released")
}

func TestExerciseLeavesParentStackAlone(t *testing.T) {
	assoc := groupid.New()
	parent := execctx.New(context.Background(), "parent")
	assoc.PushGroupID(parent, "parent-entry")

	reports, err := Exercise(parent, assoc, 3, 10)
	require.NoError(t, err)
	for _, r := range reports {
		assert.True(t, r.OK(), "%s: %s", r.Name, r.Problem())
	}

	got, ok := assoc.PeekGroupID(parent)
	require.True(t, ok)
	assert.Equal(t, "parent-entry", got)
}

func TestExerciseRejectsBadInput(t *testing.T) {
	_, err := Exercise(context.Background(), groupid.New(), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidWorkload)
	_, err = Exercise(context.Background(), groupid.New(), 1, -1)
	assert.ErrorIs(t, err, ErrInvalidWorkload)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Exercise(ctx, groupid.New(), 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, CheckIsolation(ctx, groupid.New(), 1, 1).Passed)
}

func TestExerciseOneStopsWhenCancelledMidway(t *testing.T) {
	assoc := groupid.New()
	ctx := &cancelAfterCtx{Context: context.Background(), allowed: 2}

	report := exerciseOne(ctx, assoc, "long", 10*cancelCheckInterval)

	assert.True(t, report.Aborted)
	assert.False(t, report.OK())
	assert.Equal(t, 2*cancelCheckInterval, report.Pushed)
	assert.Zero(t, report.Popped)
	assert.Contains(t, report.Problem(), "aborted")
	assert.Empty(t, assoc.Executions(), "aborted execution should still release its stack")
}

func TestExerciseOneStopsDuringPops(t *testing.T) {
	assoc := groupid.New()
	// One check during pushes, two during pops.
	ctx := &cancelAfterCtx{Context: context.Background(), allowed: 2}

	report := exerciseOne(ctx, assoc, "drain", cancelCheckInterval)

	assert.True(t, report.Aborted)
	assert.Equal(t, cancelCheckInterval, report.Pushed)
	assert.Equal(t, cancelCheckInterval, report.Popped)
	assert.Empty(t, assoc.Executions())
}

func TestExecutionReportProblem(t *testing.T) {
	tests := []struct {
		report ExecutionReport
		want   string
	}{
		{ExecutionReport{Pushed: 2, Popped: 2}, ""},
		{ExecutionReport{Pushed: 2, Popped: 2, Foreign: 1}, "1 foreign ids"},
		{ExecutionReport{Pushed: 2, Popped: 2, Misordered: 2}, "2 ids out of order"},
		{ExecutionReport{Pushed: 2, Popped: 1}, "pushed 2 but popped 1"},
		{ExecutionReport{Pushed: 2, Popped: 0, Aborted: true}, "aborted after 2 pushes and 0 pops"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.report.Problem())
		assert.Equal(t, tc.want == "", tc.report.OK(), "%+v", tc.report)
	}
}

func TestCheckTraceSink(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	r := CheckTraceSink(ctx, &cfg, nil)
	assert.True(t, r.Passed)
	assert.Equal(t, "Disabled", r.Detail)

	cfg.Trace.Enabled = true
	assert.False(t, CheckTraceSink(ctx, &cfg, nil).Passed, "no logger")

	info, _ := testsupport.NewCaptureLogger(slog.LevelInfo)
	assert.False(t, CheckTraceSink(ctx, &cfg, info).Passed, "logger drops trace")

	trace, _ := testsupport.NewCaptureLogger(logging.LevelTrace)
	assert.True(t, CheckTraceSink(ctx, &cfg, trace).Passed)
}

func TestRunAll(t *testing.T) {
	assert.Nil(t, RunAll(context.Background(), nil, nil))

	cfg := testsupport.NewConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Logging.Dir, 0o755))

	results := RunAll(context.Background(), cfg, logging.NewNop())
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Passed, "%s failed: %s", r.Name, r.Detail)
	}
}

func TestRunAllWithoutLogDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutLogDir(), testsupport.WithTrace(true))

	results := RunAll(context.Background(), cfg, logging.NewNop())
	require.Len(t, results, 2)
	assert.Equal(t, "Trace sink", results[0].Name)
	assert.False(t, results[0].Passed, "nop logger drops trace")
	assert.True(t, results[1].Passed, results[1].Detail)
}

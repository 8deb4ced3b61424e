package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordgroup/internal/execctx"
	"recordgroup/internal/logging"
	"recordgroup/internal/testsupport"
)

func TestNewFromConfigWritesJSONFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTrace(true))

	logger, err := logging.NewFromConfig(cfg)
	require.NoError(t, err)
	require.True(t, logger.Enabled(context.Background(), logging.LevelTrace), "trace config should enable trace level")

	logger.Log(context.Background(), logging.LevelTrace, "trace line", slog.String(logging.FieldGroupID, "g1"))

	content, err := os.ReadFile(filepath.Join(testsupport.BaseDir(cfg), "logs", "recordgroup.log"))
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &line))
	assert.Equal(t, "trace", line["level"])
	assert.Equal(t, "g1", line["group_id"])
}

func TestNewFromConfigWithoutLogDir(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithLogLevel("debug"),
		testsupport.WithLogFormat("json"),
		testsupport.WithoutLogDir(),
	)
	require.Empty(t, cfg.Logging.Dir)

	logger, err := logging.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, logger.Enabled(context.Background(), logging.LevelTrace), "trace stays off without trace.enabled")
}

func TestNewFromConfigNil(t *testing.T) {
	logger, err := logging.NewFromConfig(nil)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug), "nil config should default to info")
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	require.NoError(t, err)

	logger.Info("message without caller", slog.String("k", "v w"))

	assert.NotContains(t, buf.String(), ".go:")
	assert.Contains(t, buf.String(), `k="v w"`)
}

func TestConsoleLoggerWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "console.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	require.NoError(t, err)

	logger.Warn("disk message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "WARN")
	assert.Contains(t, string(content), "disk message")
}

func TestConsoleLoggerTraceSubject(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "trace", Writer: &buf})
	require.NoError(t, err)

	ctx := execctx.New(context.Background(), "worker one")
	logging.WithContext(ctx, logging.NewComponentLogger(logger, "groupid")).
		Log(ctx, logging.LevelTrace, "group id pop", slog.String(logging.FieldGroupID, ""))

	out := buf.String()
	for _, want := range []string{"TRACE [groupid] Worker One (", "group id pop", `group_id: ""`, ".go:"} {
		assert.Contains(t, out, want)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logger, err := logging.New(logging.Options{Format: "json", Level: "invalid"})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestLevelName(t *testing.T) {
	tests := map[slog.Level]string{
		logging.LevelTrace: "trace",
		slog.LevelDebug:    "debug",
		slog.LevelInfo:     "info",
		slog.LevelWarn:     "warn",
		slog.LevelError:    "error",
	}
	for level, want := range tests {
		assert.Equal(t, want, logging.LevelName(level), "level %v", level)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	parent := execctx.New(context.Background(), "parent")
	ctx := execctx.New(parent, "child")
	exec, _ := execctx.FromContext(ctx)

	logger, capture := testsupport.NewCaptureLogger(slog.LevelInfo)
	logging.WithContext(ctx, logger).Info("contextual log")

	records := capture.Records()
	require.Len(t, records, 1)
	attrs := records[0].Attrs
	assert.Equal(t, exec.ID, attrs[logging.FieldExecutionID])
	assert.Equal(t, "child", attrs[logging.FieldExecutionName])
	assert.Equal(t, exec.ParentID, attrs[logging.FieldParentExecutionID])
}

func TestWithContextWithoutExecution(t *testing.T) {
	assert.Empty(t, logging.ContextFields(context.Background()))
	assert.NotNil(t, logging.WithContext(context.Background(), nil), "nil base should give a nop logger")
}

func TestWithLevelFloor(t *testing.T) {
	logger, capture := testsupport.NewCaptureLogger(logging.LevelTrace)

	floored := logging.WithLevelFloor(logger, slog.LevelInfo)
	floored.Debug("dropped")
	floored.Info("kept")

	relaxed := logging.WithLevelFloor(floored, logging.LevelTrace)
	relaxed.Log(context.Background(), logging.LevelTrace, "kept too")

	records := capture.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "kept", records[0].Message)
	assert.Equal(t, "kept too", records[1].Message)
}

func TestFormatSubject(t *testing.T) {
	tests := []struct {
		name, id, want string
	}{
		{"worker-1", "3f2a1b4c-aaaa-bbbb", "Worker-1 (3f2a1b4c)"},
		{"", "3f2a1b4c-aaaa", "3f2a1b4c"},
		{"root", "root", "Root"},
		{"  ", "", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, logging.FormatSubject(tc.name, tc.id), "FormatSubject(%q, %q)", tc.name, tc.id)
	}
}

func TestTeeHandlerSharesRecords(t *testing.T) {
	_, first := testsupport.NewCaptureLogger(logging.LevelTrace)
	_, second := testsupport.NewCaptureLogger(slog.LevelInfo)

	logger := slog.New(logging.TeeHandler(first, second))
	attrs := []logging.Attr{
		logging.String(logging.FieldGroupID, "g1"),
		logging.String(logging.FieldOperation, "push"),
	}
	assert.True(t, logging.HasAttrKey(attrs, logging.FieldGroupID))
	assert.False(t, logging.HasAttrKey(attrs, logging.FieldDepth))

	logger.Log(context.Background(), logging.LevelTrace, "group id push", logging.Args(attrs...)...)
	logger.Info("summary", logging.Args(logging.String(logging.FieldGroupID, "g2"))...)

	assert.Len(t, first.Filter(logging.FieldGroupID, "g1"), 1)
	assert.Empty(t, second.Filter(logging.FieldGroupID, "g1"), "info sink must not see trace records")
	assert.Len(t, second.Filter(logging.FieldGroupID, "g2"), 1)
}

package logging

import (
	"context"
	"log/slog"

	"recordgroup/internal/execctx"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldExecutionID is the standardized structured logging key for execution identifiers.
	FieldExecutionID = "execution_id"
	// FieldExecutionName is the standardized structured logging key for execution names.
	FieldExecutionName = "execution_name"
	// FieldParentExecutionID is the standardized structured logging key for the spawning execution.
	FieldParentExecutionID = "parent_execution_id"
	// FieldGroupID is the standardized structured logging key for record group identifiers.
	FieldGroupID = "group_id"
	// FieldOperation is the standardized structured logging key for the stack operation kind.
	FieldOperation = "op"
	// FieldFound reports whether a peek or pop produced a value.
	FieldFound = "found"
	// FieldDepth is the standardized structured logging key for stack depth.
	FieldDepth = "depth"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	exec, ok := execctx.FromContext(ctx)
	if !ok {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	fields = append(fields, slog.String(FieldExecutionID, exec.ID))
	if exec.Name != "" {
		fields = append(fields, slog.String(FieldExecutionName, exec.Name))
	}
	if exec.ParentID != "" {
		fields = append(fields, slog.String(FieldParentExecutionID, exec.ParentID))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}

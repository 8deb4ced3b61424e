package groupid

import (
	"context"
	"log/slog"
	"sync"
)

var (
	defaultOnce  sync.Once
	defaultAssoc *Association
)

// Default returns the process-wide Association used by the package-level
// helpers. It starts without a trace sink; see SetDefaultLogger.
func Default() *Association {
	defaultOnce.Do(func() {
		defaultAssoc = New()
	})
	return defaultAssoc
}

// SetDefaultLogger sets the trace sink of the process-wide Association.
func SetDefaultLogger(logger *slog.Logger) {
	Default().SetLogger(logger)
}

// Push associates groupID with the execution carried by ctx.
func Push(ctx context.Context, groupID string) {
	Default().PushGroupID(ctx, groupID)
}

// Peek returns the current group ID of the execution carried by ctx.
func Peek(ctx context.Context) (string, bool) {
	return Default().PeekGroupID(ctx)
}

// Pop returns and removes the current group ID of the execution carried by ctx.
func Pop(ctx context.Context) (string, bool) {
	return Default().PopGroupID(ctx)
}

// Within runs fn with groupID pushed on the process-wide Association.
func Within(ctx context.Context, groupID string, fn func(context.Context) error) error {
	return Default().Within(ctx, groupID, fn)
}

// Release drops the stack of the execution carried by ctx from the
// process-wide Association.
func Release(ctx context.Context) {
	Default().Release(ctx)
}

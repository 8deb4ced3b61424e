package execctx

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const executionKey contextKey = "execution"

// RootID identifies the execution used when a context carries none.
const RootID = "root"

// Execution describes one isolated unit of work.
type Execution struct {
	ID       string
	Name     string
	ParentID string
}

// IsRoot reports whether e is the shared fallback execution.
func (e Execution) IsRoot() bool {
	return e.ID == RootID
}

// Label returns the name when present, otherwise the identifier.
func (e Execution) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

var root = Execution{ID: RootID, Name: RootID}

// Root returns the shared fallback execution.
func Root() Execution {
	return root
}

// New annotates ctx with a fresh execution. An execution already present on
// ctx becomes the parent; its per-execution state is not inherited.
func New(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	exec := Execution{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(name),
	}
	if parent, ok := FromContext(ctx); ok {
		exec.ParentID = parent.ID
	}
	return context.WithValue(ctx, executionKey, exec)
}

// FromContext extracts the execution attached to ctx, if any.
func FromContext(ctx context.Context) (Execution, bool) {
	if ctx == nil {
		return Execution{}, false
	}
	exec, ok := ctx.Value(executionKey).(Execution)
	if !ok || exec.ID == "" {
		return Execution{}, false
	}
	return exec, true
}

// Resolve returns the execution attached to ctx or the root execution.
func Resolve(ctx context.Context) Execution {
	if exec, ok := FromContext(ctx); ok {
		return exec
	}
	return root
}

package groupid

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"recordgroup/internal/execctx"
	"recordgroup/internal/logging"
)

const (
	opPush    = "push"
	opPeek    = "peek"
	opPop     = "pop"
	opRelease = "release"
)

// Association is the process-wide store mapping executions to their group ID
// stacks. It is safe for concurrent use.
type Association struct {
	mu     sync.Mutex
	stacks map[string]*Stack
	logger atomic.Pointer[slog.Logger]
}

// Option configures an Association.
type Option func(*Association)

// WithLogger sets the trace sink. A nil logger disables tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Association) {
		a.SetLogger(logger)
	}
}

// New builds an empty Association.
func New(opts ...Option) *Association {
	a := &Association{stacks: make(map[string]*Stack)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// SetLogger replaces the trace sink. It is safe to call while other
// goroutines use the Association.
func (a *Association) SetLogger(logger *slog.Logger) {
	if logger != nil {
		logger = logging.NewComponentLogger(logger, "groupid")
	}
	a.logger.Store(logger)
}

// PushGroupID associates groupID with the execution carried by ctx.
func (a *Association) PushGroupID(ctx context.Context, groupID string) {
	exec := execctx.Resolve(ctx)
	depth := a.stack(exec.ID, true).Push(groupID)
	a.trace(ctx, exec, opPush, groupID, true, depth)
}

// PeekGroupID returns the group ID currently associated with the execution
// carried by ctx, leaving it in place.
func (a *Association) PeekGroupID(ctx context.Context) (string, bool) {
	exec := execctx.Resolve(ctx)
	var (
		groupID string
		found   bool
		depth   int
	)
	if s := a.stack(exec.ID, false); s != nil {
		groupID, found = s.Peek()
		depth = s.Len()
	}
	a.trace(ctx, exec, opPeek, groupID, found, depth)
	return groupID, found
}

// PopGroupID returns the group ID currently associated with the execution
// carried by ctx and removes the association.
func (a *Association) PopGroupID(ctx context.Context) (string, bool) {
	exec := execctx.Resolve(ctx)
	var (
		groupID string
		found   bool
		depth   int
	)
	if s := a.stack(exec.ID, false); s != nil {
		groupID, found = s.Pop()
		depth = s.Len()
	}
	a.trace(ctx, exec, opPop, groupID, found, depth)
	return groupID, found
}

// Within pushes groupID, runs fn, then unwinds the execution's stack back to
// its previous depth. The unwind runs even when fn returns an error or panics,
// and also discards entries fn pushed without popping.
func (a *Association) Within(ctx context.Context, groupID string, fn func(context.Context) error) error {
	exec := execctx.Resolve(ctx)
	depth := a.Depth(ctx)
	a.PushGroupID(ctx, groupID)
	defer func() {
		s := a.stack(exec.ID, false)
		if s == nil {
			return
		}
		for s.Len() > depth {
			a.PopGroupID(ctx)
		}
	}()
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Depth returns how many group IDs the execution carried by ctx holds.
func (a *Association) Depth(ctx context.Context) int {
	if s := a.stack(execctx.Resolve(ctx).ID, false); s != nil {
		return s.Len()
	}
	return 0
}

// Snapshot returns the execution's group IDs ordered bottom to top.
func (a *Association) Snapshot(ctx context.Context) []string {
	if s := a.stack(execctx.Resolve(ctx).ID, false); s != nil {
		return s.Snapshot()
	}
	return nil
}

// Release drops the stack held for the execution carried by ctx. Releasing an
// execution without a stack is a no-op.
func (a *Association) Release(ctx context.Context) {
	exec := execctx.Resolve(ctx)
	a.mu.Lock()
	s, ok := a.stacks[exec.ID]
	delete(a.stacks, exec.ID)
	a.mu.Unlock()
	if !ok {
		return
	}
	a.trace(ctx, exec, opRelease, "", false, s.Len())
}

// Executions returns the sorted IDs of executions currently holding a stack,
// including ones whose stack has been emptied but not released.
func (a *Association) Executions() []string {
	a.mu.Lock()
	ids := make([]string, 0, len(a.stacks))
	for id := range a.stacks {
		ids = append(ids, id)
	}
	a.mu.Unlock()
	sort.Strings(ids)
	return ids
}

func (a *Association) stack(execID string, create bool) *Stack {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.stacks[execID]
	if !ok && create {
		s = &Stack{}
		a.stacks[execID] = s
	}
	return s
}

// trace is best-effort; a panicking handler is swallowed.
func (a *Association) trace(ctx context.Context, exec execctx.Execution, op, groupID string, found bool, depth int) {
	logger := a.logger.Load()
	if logger == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	if !logger.Enabled(ctx, logging.LevelTrace) {
		return
	}
	attrs := []slog.Attr{
		logging.String(logging.FieldOperation, op),
		logging.String(logging.FieldExecutionID, exec.ID),
		logging.String(logging.FieldExecutionName, exec.Label()),
		logging.Int(logging.FieldDepth, depth),
	}
	if op != opRelease {
		attrs = append(attrs, logging.Bool(logging.FieldFound, found))
		if found {
			attrs = append(attrs, logging.String(logging.FieldGroupID, groupID))
		}
	}
	logger.LogAttrs(ctx, logging.LevelTrace, "group id "+op, attrs...)
}

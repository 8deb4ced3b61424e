package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"recordgroup/internal/execctx"
	"recordgroup/internal/groupid"
)

// ErrInvalidWorkload marks Exercise calls with unusable sizes.
var ErrInvalidWorkload = errors.New("invalid workload")

// ExecutionReport summarizes one execution of the isolation probe.
type ExecutionReport struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Pushed     int    `json:"pushed"`
	Popped     int    `json:"popped"`
	Foreign    int    `json:"foreign"`
	Misordered int    `json:"misordered"`
	Aborted    bool   `json:"aborted,omitempty"`
}

// cancelCheckInterval is how many push or pop iterations run between context
// checks.
const cancelCheckInterval = 1024

// OK reports whether the execution got back exactly its own IDs reversed.
func (r ExecutionReport) OK() bool {
	return !r.Aborted && r.Pushed == r.Popped && r.Foreign == 0 && r.Misordered == 0
}

// Problem describes the first failed expectation, or "" when OK.
func (r ExecutionReport) Problem() string {
	switch {
	case r.Aborted:
		return fmt.Sprintf("aborted after %d pushes and %d pops", r.Pushed, r.Popped)
	case r.Foreign > 0:
		return fmt.Sprintf("%d foreign ids", r.Foreign)
	case r.Misordered > 0:
		return fmt.Sprintf("%d ids out of order", r.Misordered)
	case r.Pushed != r.Popped:
		return fmt.Sprintf("pushed %d but popped %d", r.Pushed, r.Popped)
	default:
		return ""
	}
}

// Exercise starts the given number of executions concurrently. Each pushes
// ids distinct group IDs, pops until empty, and releases its stack. Reports
// are returned in execution order. Cancelling ctx stops every execution
// early; the partial reports are returned with ctx's error.
func Exercise(ctx context.Context, assoc *groupid.Association, executions, ids int) ([]ExecutionReport, error) {
	if executions <= 0 {
		return nil, fmt.Errorf("%w: executions must be positive, got %d", ErrInvalidWorkload, executions)
	}
	if ids < 0 {
		return nil, fmt.Errorf("%w: ids must not be negative, got %d", ErrInvalidWorkload, ids)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]ExecutionReport, executions)
	var wg sync.WaitGroup
	for i := 0; i < executions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i] = exerciseOne(ctx, assoc, fmt.Sprintf("exercise-%d", i+1), ids)
		}(i)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return reports, err
	}
	return reports, nil
}

func exerciseOne(parent context.Context, assoc *groupid.Association, name string, ids int) ExecutionReport {
	ctx := execctx.New(parent, name)
	defer assoc.Release(ctx)
	exec, _ := execctx.FromContext(ctx)

	report := ExecutionReport{Name: name, ID: exec.ID}
	prefix := exec.ID + "/"
	for i := 0; i < ids; i++ {
		if i%cancelCheckInterval == 0 && parent.Err() != nil {
			report.Aborted = true
			return report
		}
		assoc.PushGroupID(ctx, fmt.Sprintf("%s%d", prefix, i))
		report.Pushed++
	}

	want := ids - 1
	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 && parent.Err() != nil {
			report.Aborted = true
			return report
		}
		id, ok := assoc.PopGroupID(ctx)
		if !ok {
			break
		}
		report.Popped++
		if !strings.HasPrefix(id, prefix) {
			report.Foreign++
			continue
		}
		if id != fmt.Sprintf("%s%d", prefix, want) {
			report.Misordered++
		}
		want--
	}
	return report
}

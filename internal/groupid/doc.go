// Package groupid associates record group IDs with the current execution.
//
// Each execution (see package execctx) owns a private last-in-first-out stack
// of group IDs. Callers push an ID when a logical unit of work starts, read it
// with Peek while emitting monitoring records, and pop it when the unit ends.
// Entries pushed by one execution are never visible to another.
//
// Go has no goroutine-local storage, so an Association keeps an explicit
// registry from execution ID to stack. Contexts without an attached execution
// share the root execution. Call Release when an execution finishes so its
// stack does not outlive it.
//
// Every operation is total: absence is reported through the boolean result,
// never through an error. When the configured logger has trace enabled, each
// operation emits one record at logging.LevelTrace; a failing log handler
// cannot affect stack state.
package groupid

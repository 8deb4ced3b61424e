// Package execctx attaches execution identities to context.Context values.
//
// An execution is the unit of isolation for per-context state such as the
// group ID stacks kept by package groupid. Go does not expose goroutine
// identity, so callers opt in by deriving a context with New at the start of
// each unit of work (typically once per goroutine) and passing that context
// down the call chain. Code that never attaches an execution resolves to a
// shared root execution.
package execctx

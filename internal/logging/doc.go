// Package logging assembles structured slog loggers and formatting helpers used
// across recordgroup.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing (including the trace level used for group ID diagnostics), and
// exposes context-aware helpers so callers can tag log lines with the current
// execution. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging

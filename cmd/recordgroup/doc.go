// Package main hosts the recordgroup CLI entrypoint and command graph.
//
// The Cobra command tree exercises the group ID association from the
// terminal: a concurrent isolation workload, a traced push/peek/pop session,
// preflight checks, and configuration scaffolding. Configuration and logger
// construction are resolved once per invocation in commandContext so
// subcommands only deal with output.
package main

// Package preflight provides readiness checks for recordgroup.
//
// These checks run from the CLI "recordgroup check" command and from the
// "exercise" command, which reuses the isolation probe to report per
// execution results:
//   - CheckIsolation drives several executions concurrently through an
//     Association and verifies each one gets back exactly its own group IDs
//     in reverse push order.
//   - CheckTraceSink reports whether group ID trace records will be emitted.
//   - CheckDirectoryAccess verifies the configured log directory is usable.
//
// The log directory check is gated by its config value; unset means skipped.
package preflight

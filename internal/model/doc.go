// Package model defines the domain types and value objects for the
// uuid7time CLI.
//
// This package contains pure data structures with no external dependencies:
// the OutputFormat enumeration, the Record value object produced for each
// successfully decoded UUID, and the error types (ItemError for per-item
// failures, CLIError for process-level failures carrying exit codes).
//
// All values are transient — the tool holds no state between invocations,
// and no state is shared between batch items.
package model

// Package batch drives the per-item processing loop of the uuid7time CLI.
//
// Candidates come from positional arguments or, when none are given, from
// non-empty lines of a reader (normally stdin). Items are processed
// strictly sequentially in input order; each candidate is decoded and
// rendered independently, and a failure never skips or reorders the
// remaining candidates. Per-item diagnostics go to the error writer
// unless quiet mode is set; the aggregate outcome is reduced to a Result
// that the CLI layer maps onto the process exit code.
package batch

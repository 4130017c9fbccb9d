// Package format renders decoded UUID timestamp records as output lines.
//
// Each Record renders to exactly one line in one of four modes: the
// ISO-8601 instant (default), Unix seconds, Unix milliseconds, or a
// single-line JSON object with a fixed key order. Rendering is pure —
// all values are precomputed on the Record, so the same Record always
// produces byte-identical output.
package format

// Package uuid7 decodes the creation timestamp embedded in UUID version 7
// identifiers.
//
// A UUIDv7 stores a 48-bit big-endian Unix millisecond count in its first
// 6 bytes. This package parses UUID strings, reads that field, and builds
// the Record value object with the instant rendered as ISO-8601 and
// RFC-3339 text.
//
// Version and variant bits are deliberately not enforced: any 16-byte
// value decodes, so mis-tagged identifiers still yield the byte-for-byte
// timestamp field.
package uuid7

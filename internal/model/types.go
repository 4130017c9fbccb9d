package model

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a decoded timestamp is rendered on stdout.
type OutputFormat string

const (
	// FormatISO renders the instant as ISO-8601 with millisecond
	// precision and a literal "Z" suffix, e.g. "2024-01-31T07:14:26.746Z".
	// This is the default output format.
	FormatISO OutputFormat = "iso"

	// FormatUnix renders the Unix timestamp in whole seconds
	// (milliseconds floor-divided by 1000).
	FormatUnix OutputFormat = "unix"

	// FormatUnixMilli renders the raw 48-bit millisecond count.
	FormatUnixMilli OutputFormat = "unix-ms"

	// FormatJSON renders a single-line JSON object bundling the input
	// UUID, both integer timestamps, and both textual renderings.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the OutputFormat.
// This satisfies fmt.Stringer for help text and diagnostics.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the
// predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatISO, FormatUnix, FormatUnixMilli, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a string to an OutputFormat. Matching is
// case-insensitive. Returns an error if the string does not name a
// known format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q (valid: iso, unix, unix-ms, json)", s)
	}
	return format, nil
}

// Record is the immutable result of decoding one UUID. All renderings
// are derived from TimestampMilli alone, so a given UUID always maps to
// the same Record regardless of the requested output format.
//
// The struct field order fixes the JSON key order for the json output
// mode: uuid, timestamp_ms, timestamp_sec, iso8601, rfc3339.
type Record struct {
	// UUID is the input string as parsed (whitespace-trimmed).
	UUID string `json:"uuid"`

	// TimestampMilli is the 48-bit millisecond count read big-endian
	// from the first 6 bytes of the UUID. Range 0..2^48-1.
	TimestampMilli int64 `json:"timestamp_ms"`

	// TimestampSec is TimestampMilli floor-divided by 1000.
	TimestampSec int64 `json:"timestamp_sec"`

	// ISO8601 is the instant as "YYYY-MM-DDTHH:MM:SS.mmmZ"
	// (exactly 3 fractional digits, UTC, literal Z).
	ISO8601 string `json:"iso8601"`

	// RFC3339 is the same instant with an explicit "+00:00" offset
	// instead of the "Z" suffix.
	RFC3339 string `json:"rfc3339"`
}

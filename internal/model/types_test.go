package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOutputFormat_String verifies that OutputFormat values produce the
// expected string representations for help text and diagnostics.
func TestOutputFormat_String(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{FormatISO, "iso"},
		{FormatUnix, "unix"},
		{FormatUnixMilli, "unix-ms"},
		{FormatJSON, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

// TestOutputFormat_IsValid checks that only defined formats pass validation.
func TestOutputFormat_IsValid(t *testing.T) {
	assert.True(t, FormatISO.IsValid())
	assert.True(t, FormatUnix.IsValid())
	assert.True(t, FormatUnixMilli.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, OutputFormat("invalid").IsValid())
	assert.False(t, OutputFormat("").IsValid())
}

// TestParseOutputFormat verifies string-to-format conversion,
// including case normalization and error cases.
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		hasError bool
	}{
		{"iso", FormatISO, false},
		{"unix", FormatUnix, false},
		{"unix-ms", FormatUnixMilli, false},
		{"json", FormatJSON, false},
		{"ISO", FormatISO, false},           // case insensitive
		{"Unix-MS", FormatUnixMilli, false}, // case insensitive
		{"unixms", "", true},                // unknown value
		{"", "", true},                      // empty string
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOutputFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestItemError_Error checks that diagnostics name both the offending
// input and the failure kind, so invalid syntax is distinguishable from
// an out-of-range timestamp.
func TestItemError_Error(t *testing.T) {
	underlying := errors.New("invalid UUID length: 9")

	syntaxErr := NewItemError(KindInvalidUUID, "not-a-uuid", underlying)
	assert.Contains(t, syntaxErr.Error(), "invalid UUID")
	assert.Contains(t, syntaxErr.Error(), `"not-a-uuid"`)

	rangeErr := NewItemError(KindTimestampOutOfRange, "ffffffff-ffff-7000-8000-000000000000", nil)
	assert.Contains(t, rangeErr.Error(), "timestamp out of range")
	assert.Contains(t, rangeErr.Error(), "ffffffff-ffff-7000-8000-000000000000")
}

// TestItemError_Unwrap verifies errors.Is/As reach the underlying error.
func TestItemError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	itemErr := NewItemError(KindInvalidUUID, "x", underlying)

	assert.True(t, errors.Is(itemErr, underlying))

	var target *ItemError
	require.True(t, errors.As(itemErr, &target))
	assert.Equal(t, KindInvalidUUID, target.Kind)
	assert.Equal(t, "x", target.Input)
}

// TestCLIError verifies message formatting and exit code propagation.
func TestCLIError(t *testing.T) {
	plain := NewCLIError(ExitGeneralError, "something failed")
	assert.Equal(t, "something failed", plain.Error())
	assert.Equal(t, ExitGeneralError, plain.Code)

	underlying := errors.New("root cause")
	wrapped := WrapCLIError(ExitGeneralError, "something failed", underlying)
	assert.Equal(t, "something failed: root cause", wrapped.Error())
	assert.True(t, errors.Is(wrapped, underlying))
}

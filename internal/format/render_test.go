package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/uuid7time/internal/model"
)

// knownRecord mirrors the decode of 018d5e5e-7b3a-7000-8000-000000000000.
func knownRecord() *model.Record {
	return &model.Record{
		UUID:           "018d5e5e-7b3a-7000-8000-000000000000",
		TimestampMilli: 1706685266746,
		TimestampSec:   1706685266,
		ISO8601:        "2024-01-31T07:14:26.746Z",
		RFC3339:        "2024-01-31T07:14:26.746+00:00",
	}
}

// TestRender covers all four output modes for the reference record.
// The json case pins the exact line: key order fixed as uuid,
// timestamp_ms, timestamp_sec, iso8601, rfc3339 with unquoted integers.
func TestRender(t *testing.T) {
	tests := []struct {
		format   model.OutputFormat
		expected string
	}{
		{model.FormatISO, "2024-01-31T07:14:26.746Z"},
		{model.FormatUnix, "1706685266"},
		{model.FormatUnixMilli, "1706685266746"},
		{model.FormatJSON, `{"uuid":"018d5e5e-7b3a-7000-8000-000000000000","timestamp_ms":1706685266746,"timestamp_sec":1706685266,"iso8601":"2024-01-31T07:14:26.746Z","rfc3339":"2024-01-31T07:14:26.746+00:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			line, err := Render(knownRecord(), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

// TestRender_UnknownFormat verifies that an unrecognized format is
// rejected rather than silently falling back to a default.
func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(knownRecord(), model.OutputFormat("yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

// TestRender_Epoch checks the degenerate all-zero timestamp.
func TestRender_Epoch(t *testing.T) {
	rec := &model.Record{
		UUID:           "00000000-0000-7000-8000-000000000000",
		TimestampMilli: 0,
		TimestampSec:   0,
		ISO8601:        "1970-01-01T00:00:00.000Z",
		RFC3339:        "1970-01-01T00:00:00.000+00:00",
	}

	line, err := Render(rec, model.FormatUnix)
	require.NoError(t, err)
	assert.Equal(t, "0", line)

	line, err = Render(rec, model.FormatISO)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", line)
}

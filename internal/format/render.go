package format

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shinji-kodama/uuid7time/internal/model"
)

// Render produces the single output line for a record in the given
// format. The returned string carries no trailing newline; the batch
// driver appends it when writing.
//
// JSON key order follows the Record struct field order (uuid,
// timestamp_ms, timestamp_sec, iso8601, rfc3339), with the integer
// fields unquoted.
func Render(rec *model.Record, f model.OutputFormat) (string, error) {
	switch f {
	case model.FormatISO:
		return rec.ISO8601, nil
	case model.FormatUnix:
		return strconv.FormatInt(rec.TimestampSec, 10), nil
	case model.FormatUnixMilli:
		return strconv.FormatInt(rec.TimestampMilli, 10), nil
	case model.FormatJSON:
		data, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("encoding record for %q: %w", rec.UUID, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: iso, unix, unix-ms, json)", f)
	}
}

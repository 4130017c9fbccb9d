package uuid7

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shinji-kodama/uuid7time/internal/model"
)

// MaxTimestampMilli is the largest millisecond count with a supported
// calendar rendering: 9999-12-31T23:59:59.999Z. A 48-bit field can hold
// values up to roughly the year 10889, but capping at year 9999 keeps
// every ISO-8601/RFC-3339 rendering to a fixed-width four-digit year.
// Counts above this fail with model.KindTimestampOutOfRange.
const MaxTimestampMilli int64 = 253402300799999

// isoMilliLayout renders an instant with exactly 3 fractional digits and
// a literal Z suffix. ".000" (unlike ".999") never drops trailing zeros.
const isoMilliLayout = "2006-01-02T15:04:05.000Z"

// rfc3339MilliLayout is the same instant with an explicit numeric offset,
// which time.Format renders as "+00:00" for UTC.
const rfc3339MilliLayout = "2006-01-02T15:04:05.000-07:00"

// Parse decodes a UUID string into its 16-byte value. It accepts the
// canonical hyphenated form as well as the braced, urn:uuid: prefixed,
// and 32-character unhyphenated forms that github.com/google/uuid
// understands. Failures are reported as model.KindInvalidUUID.
func Parse(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, model.NewItemError(model.KindInvalidUUID, s, err)
	}
	return u, nil
}

// TimestampMilli reads the first 6 bytes of the UUID as a big-endian
// 48-bit unsigned integer: the Unix millisecond count a UUIDv7 encodes.
// Every 6-byte value forms a valid count, so this never fails; the
// result is at most 2^48-1 and always fits an int64.
func TimestampMilli(u uuid.UUID) int64 {
	var buf [8]byte
	copy(buf[2:], u[0:6])
	return int64(binary.BigEndian.Uint64(buf[:]))
}

// Instant converts a millisecond count to its UTC calendar instant.
// Counts beyond MaxTimestampMilli are rejected with
// model.KindTimestampOutOfRange; the input string is only used for the
// diagnostic.
func Instant(input string, milli int64) (time.Time, error) {
	if milli > MaxTimestampMilli {
		return time.Time{}, model.NewItemError(model.KindTimestampOutOfRange, input,
			fmt.Errorf("%d ms is after 9999-12-31T23:59:59.999Z", milli))
	}
	return time.UnixMilli(milli).UTC(), nil
}

// Extract runs the full decode pipeline for one candidate string:
// parse the UUID, read the 48-bit millisecond field, and build the
// immutable Record with both integer timestamps and both textual
// renderings. Errors are *model.ItemError values carrying the kind
// and the offending input.
func Extract(input string) (*model.Record, error) {
	u, err := Parse(input)
	if err != nil {
		return nil, err
	}

	milli := TimestampMilli(u)
	instant, err := Instant(input, milli)
	if err != nil {
		return nil, err
	}

	return &model.Record{
		UUID:           input,
		TimestampMilli: milli,
		TimestampSec:   milli / 1000,
		ISO8601:        instant.Format(isoMilliLayout),
		RFC3339:        instant.Format(rfc3339MilliLayout),
	}, nil
}

package wireform

import (
	"time"

	"github.com/wireform/wireform/schema"
)

// Temporal codecs. Decode accepts RFC 3339 with or without fractional
// seconds; encode normalizes to UTC and trims trailing zeros, so every
// value round-trips through its own encoding.

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05.999999999"
)

// Instant converts between RFC 3339 strings and time.Time.
func Instant() Codec[string, time.Time] {
	return ParsedCodec(parseRFC3339, formatRFC3339Canonical, schema.StringFormat("date-time"))
}

// Date converts between ISO-8601 calendar dates (2006-01-02) and time.Time
// at midnight UTC.
func Date() Codec[string, time.Time] {
	return ParsedCodec(
		func(raw string) (time.Time, error) { return time.Parse(dateLayout, raw) },
		func(t time.Time) string { return t.UTC().Format(dateLayout) },
		schema.StringFormat("date"),
	)
}

// TimeOfDay converts between ISO-8601 partial times (15:04:05, optional
// fraction) and time.Time on the zero date.
func TimeOfDay() Codec[string, time.Time] {
	return ParsedCodec(
		func(raw string) (time.Time, error) {
			t, err := time.Parse(timeOfDayLayout, raw)
			if err != nil {
				return time.Parse("15:04:05", raw)
			}
			return t, nil
		},
		func(t time.Time) string { return t.Format(timeOfDayLayout) },
		schema.StringFormat("time"),
	)
}

// Duration converts between Go duration strings ("1h30m", "250ms") and
// time.Duration. The Go grammar is locale-independent and round-trips
// through time.Duration.String.
func Duration() Codec[string, time.Duration] {
	return ParsedCodec(time.ParseDuration, time.Duration.String, schema.StringFormat("duration"))
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}

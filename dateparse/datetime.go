// Package dateparse normalizes machine-readable datetime attribute values
// using github.com/araddon/dateparse.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ToDatetime parses a free-form date or date-time value and normalizes it.
//
// The parsed instant is converted to UTC and its wall-clock fields are then
// reinterpreted in time.Local, discarding the original offset. Sub-second
// precision is dropped. Stored entries and their consumers compare against
// values produced this way, so the rule must not change.
//
// The boolean is false for empty input or anything that does not parse.
func ToDatetime(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	// dateparse panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, false
	}
	return naive(parsed), true
}

func naive(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), 0, time.Local)
}

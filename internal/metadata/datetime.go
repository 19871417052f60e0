package metadata

import (
	"strings"
	"time"
)

// Layouts carrying an explicit zone. Fractional seconds are accepted by
// time.Parse after the seconds field even though the layouts omit them.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
}

// Layouts without a zone, interpreted in the builder's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 datetime. Values without a zone offset are
// read in loc (UTC when nil). Date-only values resolve to midnight.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, nil
			}
		}
		for _, layout := range localLayouts {
			if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, &FormatError{Field: KeyDateTime, Value: value, Err: ErrDateTimePattern}
}

// Package timestamp normalizes export timestamps.
//
// Exports carry ISO-8601 date-times, with or without a zone, possibly ending
// with the UTC marker "Z". Ledger entries always use the [Format] layout, with
// an explicit numeric zone.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format is the layout of normalized timestamps: "YYYY-MM-DD HH:MM:SS±HHMM".
const Format = "2006-01-02 15:04:05-0700"

// ErrParse is returned for timestamps that are not ISO-8601 date-times.
var ErrParse = errors.New("invalid timestamp")

// layouts accepted on read. Fractional seconds are accepted after the seconds
// field by the time package even though the layouts do not mention them.
// Layouts without a zone read as UTC.
var layouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02 15:04-07:00",
	"2006-01-02T15:04-0700",
	"2006-01-02 15:04-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse parses an ISO-8601 timestamp. A trailing "Z" is read as "+00:00".
func Parse(str string) (time.Time, error) {
	s := strings.TrimSpace(str)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: want ISO-8601 like %q", ErrParse, str, "2006-01-02T15:04:05Z")
}

// Normalize parses 'str' and formats it in the Format layout.
func Normalize(str string) (string, error) {
	t, err := Parse(str)
	if err != nil {
		return "", err
	}
	return t.Format(Format), nil
}

// MustNormalize is like Normalize but panics on error.
func MustNormalize(str string) string {
	s, err := Normalize(str)
	if err != nil {
		panic(err.Error())
	}
	return s
}

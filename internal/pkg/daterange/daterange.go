// Package daterange parses the YYYY-MM-DD query parameters used by list and
// report endpoints. A day pair covers [from 00:00:00.000Z, to 23:59:59.999Z].
package daterange

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Layout is the accepted calendar day format
const Layout = "2006-01-02"

var (
	ErrMissing = errors.New("date range is incomplete")
	ErrInvalid = errors.New("invalid date format")
)

// Range is an inclusive time interval
type Range struct {
	From time.Time
	To   time.Time
}

// ParseDay parses a YYYY-MM-DD string as midnight UTC
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissing
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	return t, nil
}

// Parse requires both bounds
func Parse(from, to string) (Range, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return Range{}, ErrMissing
	}
	start, err := ParseDay(from)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseDay(to)
	if err != nil {
		return Range{}, err
	}
	return Range{From: start, To: EndOfDay(end)}, nil
}

// Optional returns nil unless both bounds are present. A present but
// malformed bound is still an error.
func Optional(from, to string) (*Range, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, nil
	}
	r, err := Parse(from, to)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Day returns the range covering the UTC calendar day containing t
func Day(t time.Time) Range {
	start := StartOfDay(t)
	return Range{From: start, To: EndOfDay(start)}
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfDay()
}

// EndOfDay returns 23:59:59.999 UTC on the day of t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// Contains reports whether t lies inside the range, bounds included
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Package month provides a calendar-month value type with first-of-month
// granularity, used for ledger sequencing and storage.
package month

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation of a month.
const Format = "2006-01"

// Month represents a calendar month with no finer granularity.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month.
// Out-of-range months roll over the year, matching time.Date semantics.
func New(year int, m time.Month) Month {
	t := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// FromTime returns the Month containing the given time.
func FromTime(t time.Time) Month {
	return Month{y: t.Year(), m: t.Month()}
}

// Parse parses a Month from its "YYYY-MM" representation.
func Parse(str string) (Month, error) {
	t, err := time.Parse(Format, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, Format, err)
	}
	return Month{y: t.Year(), m: t.Month()}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(str string) Month {
	m, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Year returns the calendar year.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// Next returns the immediately following calendar month, handling year rollover.
func (m Month) Next() Month { return New(m.y, m.m+1) }

// Before reports whether m is chronologically before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// After reports whether m is chronologically after x.
func (m Month) After(x Month) bool { return x.Before(m) }

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month as "YYYY-MM". The representation sorts
// lexicographically in chronological order, which the store relies on.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(Format)
}

// MarshalJSON encodes the month as a "YYYY-MM" JSON string.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes the month from a "YYYY-MM" JSON string.
func (m *Month) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Package types implements special types for the EquiTrack dashboard.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
//
// It is always set to 00:00 UTC on the first of the month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in UTC.
//
// Times carrying a zone are converted first, so two clients in different
// zones always bucket the same instant into the same month.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Label returns the display label used for chart axes, e.g. "Jan 2025".
//
// Labels do not sort chronologically, use Before or Ordinal for ordering.
func (m Month) Label() string {
	return time.Time(m).Format("Jan 2006")
}

// Ordinal returns a number that increases by one for every month.
func (m Month) Ordinal() int {
	return time.Time(m).Year()*12 + int(time.Time(m).Month()) - 1
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Everything except the year and month of the parsed value is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if t, err := time.Parse("2006-01", value); err == nil {
		*m = MonthOf(t)
		return nil
	}

	var d Date
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = d.Month()
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t).Equal(m)
}

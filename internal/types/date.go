package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// dateLayouts are tried in order when parsing a date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Date is a calendar date without a time of day.
//
// It is always set to 00:00 UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of a time in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return NewDate(year, month, day)
}

// ParseDate parses a full-date, an RFC 3339 timestamp or a timestamp
// without zone. Timestamps with a zone are converted to UTC before the
// date is taken, timestamps without one are read as UTC.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Time returns the date as time.Time at 00:00 UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Month returns the month the date is in.
func (d Date) Month() Month {
	return MonthOf(time.Time(d))
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same calendar date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Compare returns -1 if d is before e, +1 if it is after and 0 if they are equal.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
// The zero date is encoded as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Besides strings in any format accepted by ParseDate, arrays of the form
// [year, month, day, ...] are accepted, which is how some Java backends
// serialize local dates.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "" || value == "null" || value == `""` {
		return nil
	}

	if strings.HasPrefix(value, "[") {
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil || len(parts) < 3 {
			return fmt.Errorf("%w: %s", ErrInvalidDate, value)
		}

		// time.Date normalizes out of range values, [2025, 2, 30] would
		// become March 2nd
		date := NewDate(parts[0], time.Month(parts[1]), parts[2])
		if year, month, day := time.Time(date).Date(); year != parts[0] || int(month) != parts[1] || day != parts[2] {
			return fmt.Errorf("%w: %s", ErrInvalidDate, value)
		}

		*d = date
		return nil
	}

	parsed, err := ParseDate(strings.Trim(value, `"`))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

package planner

import (
	"cmp"
	"fmt"
	"time"
)

// InputLayout is the layout accepted by ParseDate. Month and day may be
// given with or without a leading zero.
const InputLayout = "2006-1-2"

// storageLayout is the canonical layout used on disk and in plain output.
const storageLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-M-D string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: expected YYYY-M-D", ErrDateParse, s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmp.Compare(d.Year, other.Year)
	case d.Month != other.Month:
		return cmp.Compare(d.Month, other.Month)
	default:
		return cmp.Compare(d.Day, other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Format renders d with a Go time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String returns d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(storageLayout)
}

// MarshalText encodes d as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD (or YYYY-M-D) date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

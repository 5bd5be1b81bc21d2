package quiz

import (
	"fmt"
	"time"
)

// Date is a calendar date with day granularity and no time component,
// used for streak and daily-challenge bookkeeping. Comparing Dates never
// involves timezone conversion; a Date is whatever the wall clock said
// the day was when it got captured.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf captures the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays returns the date n days after d, normalizing month and year
// boundaries.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

// Equal reports whether d and o are the same calendar day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// IsNextDay reports whether o is exactly the day after d.
func (d Date) IsNextDay(o Date) bool {
	return d.AddDays(1) == o
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Package calendar holds the value types and pure builders behind the
// pickers: calendar dates, visible periods, the Monday-first month grid and
// the time-of-day model. Nothing in here knows about terminals.
package calendar

import (
	"fmt"
	"time"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

// DateLayout is the textual form used by flags, config files and exports.
const DateLayout = "2006-01-02"

// Date is a calendar day, independent of time of day and zone.
// Two dates are equal when year, month and day match.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalising overflow the way time.Date does
// (February 30 becomes March 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, granularerrors.NewParseError(s, 0, fmt.Errorf("expected %s: %w", DateLayout, err))
	}
	return DateOf(t), nil
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday reports the native weekday (Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Equal reports calendar-day equality.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays moves d by n days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Label renders the short header form, e.g. "Sat, Feb 10".
func (d Date) Label() string {
	return d.Time(time.UTC).Format("Mon, Jan 2")
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Period is the month being displayed by a date picker, tracked separately
// from the selected date.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing d.
func PeriodOf(d Date) Period {
	return Period{Year: d.Year, Month: d.Month}
}

// Shift moves p by whole months; negative values go back.
func (p Period) Shift(months int) Period {
	t := time.Date(p.Year, p.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return Period{Year: t.Year(), Month: t.Month()}
}

// WithYear keeps the month and replaces the year.
func (p Period) WithYear(year int) Period {
	return Period{Year: year, Month: p.Month}
}

// First returns the first day of p.
func (p Period) First() Date {
	return Date{Year: p.Year, Month: p.Month, Day: 1}
}

// Last returns the last day of p.
func (p Period) Last() Date {
	return Date{Year: p.Year, Month: p.Month, Day: DaysInMonth(p.Year, p.Month)}
}

// Contains reports whether d lies in p.
func (p Period) Contains(d Date) bool {
	return d.Year == p.Year && d.Month == p.Month
}

// String renders the long month and year, e.g. "February 2024".
func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

package calendar

import "time"

// Clock abstracts time.Now so "today" is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the device clock in local time.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Today returns the calendar day reported by c, falling back to the system
// clock when c is nil.
func Today(c Clock) Date {
	if c == nil {
		c = SystemClock{}
	}
	return DateOf(c.Now())
}

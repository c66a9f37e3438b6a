package calendar

import (
	"fmt"
	"strings"
	"time"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

// Meridiem is the AM/PM half of a 12-hour clock.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// TimeOfDay is an hour (0-23) and minute (0-59) pair. The zero value is
// midnight. Values can only be built through NewTimeOfDay or TimeOf, so a
// TimeOfDay is always in range.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay validates hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, granularerrors.NewValidationError("hour", fmt.Sprintf("%d is outside 0-23", hour), nil)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, granularerrors.NewValidationError("minute", fmt.Sprintf("%d is outside 0-59", minute), nil)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// TimeOf returns the wall-clock hour and minute of t.
func TimeOf(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm"}

// ParseTimeOfDay accepts "15:04" as well as "3:04 PM" style input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return TimeOf(t), nil
		}
	}
	return TimeOfDay{}, granularerrors.NewParseError(s, 0, fmt.Errorf("expected HH:MM or H:MM AM/PM"))
}

// Hour returns the 24-hour clock hour.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute.
func (t TimeOfDay) Minute() int { return t.minute }

// Meridiem reports AM before noon and PM from noon on.
func (t TimeOfDay) Meridiem() Meridiem {
	if t.hour < 12 {
		return AM
	}
	return PM
}

// Hour12 returns the 12-hour clock hour: 0 becomes 12 and afternoon hours
// drop by twelve.
func (t TimeOfDay) Hour12() int {
	switch {
	case t.hour == 0:
		return 12
	case t.hour > 12:
		return t.hour - 12
	default:
		return t.hour
	}
}

// WithHour replaces the hour, wrapping into 0-23.
func (t TimeOfDay) WithHour(hour int) TimeOfDay {
	return TimeOfDay{hour: mod(hour, 24), minute: t.minute}
}

// WithMinute replaces the minute, wrapping into 0-59.
func (t TimeOfDay) WithMinute(minute int) TimeOfDay {
	return TimeOfDay{hour: t.hour, minute: mod(minute, 60)}
}

// TogglePeriod moves between AM and PM, keeping the 12-hour reading.
func (t TimeOfDay) TogglePeriod() TimeOfDay {
	return t.WithHour(t.hour + 12)
}

// Format renders the time in 24-hour ("09:05") or 12-hour ("9:05 AM") form.
func (t TimeOfDay) Format(use24Hour bool) string {
	if use24Hour {
		return t.String()
	}
	return FormatTime(t.hour, t.minute)
}

// On combines t with a calendar day in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, t.hour, t.minute, 0, 0, loc)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalText implements encoding.TextMarshaler using the 24-hour form.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FormatTime renders hour and minute on a 12-hour clock, e.g. "1:05 PM".
func FormatTime(hour, minute int) string {
	t := TimeOfDay{hour: mod(hour, 24), minute: mod(minute, 60)}
	return fmt.Sprintf("%d:%02d %s", t.Hour12(), t.minute, t.Meridiem())
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}

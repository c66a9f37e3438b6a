// Package picker holds the selection state machines behind the date and
// time widgets. A selection is owned by exactly one widget, is changed only
// through its transition methods, and reports changes to the observer
// callbacks supplied by the host.
package picker

import (
	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/logger"
)

// Default year bounds for the date picker.
const (
	DefaultMinYear = 1950
	DefaultMaxYear = 2050
)

// DateOptions configures a DateSelection. Zero values fall back to defaults.
type DateOptions struct {
	// Initial seeds both the selected date and the visible period.
	// Defaults to today.
	Initial calendar.Date
	MinYear int
	MaxYear int

	// OnSelectDate fires on every change of the selected date.
	OnSelectDate func(calendar.Date)
	// OnConfirm fires with the selected date when the user accepts.
	OnConfirm func(calendar.Date)
	// OnCancel fires when the user dismisses the picker.
	OnCancel func()

	Clock  calendar.Clock
	Logger *logger.Logger
}

func (o DateOptions) withDefaults() DateOptions {
	if o.Clock == nil {
		o.Clock = calendar.SystemClock{}
	}
	if o.MinYear == 0 {
		o.MinYear = DefaultMinYear
	}
	if o.MaxYear == 0 {
		o.MaxYear = DefaultMaxYear
	}
	if o.MaxYear < o.MinYear {
		o.MinYear, o.MaxYear = o.MaxYear, o.MinYear
	}
	if o.Initial.IsZero() {
		o.Initial = calendar.Today(o.Clock)
	}
	return o
}

// TimeOptions configures a TimeSelection.
type TimeOptions struct {
	// Initial seeds the selected time. Nil means the current time.
	Initial *calendar.TimeOfDay
	// Use24Hour lists 00-23 instead of 12, 1 ... 11 with AM/PM.
	Use24Hour bool
	// MinuteStep spaces the minute list; 0 means every minute.
	MinuteStep int

	OnSelectTime func(calendar.TimeOfDay)
	OnConfirm    func(calendar.TimeOfDay)
	OnCancel     func()

	Clock  calendar.Clock
	Logger *logger.Logger
}

func (o TimeOptions) withDefaults() TimeOptions {
	if o.Clock == nil {
		o.Clock = calendar.SystemClock{}
	}
	if o.MinuteStep <= 0 || o.MinuteStep > 30 {
		o.MinuteStep = 1
	}
	if o.Initial == nil {
		now := calendar.TimeOf(o.Clock.Now())
		o.Initial = &now
	}
	return o
}

package picker

import (
	"github.com/alexisbeaulieu97/granular/internal/calendar"
)

// TimeView is the list a time picker shows.
type TimeView int

const (
	ViewHours TimeView = iota
	ViewMinutes
)

func (v TimeView) String() string {
	if v == ViewMinutes {
		return "minutes"
	}
	return "hours"
}

// TimeSelection is the state of one time picker.
type TimeSelection struct {
	opts     TimeOptions
	selected calendar.TimeOfDay
	view     TimeView
	done     bool
}

// NewTimeSelection seeds a selection from opts. The initial minute is
// snapped down onto the minute step so it is always listed.
func NewTimeSelection(opts TimeOptions) TimeSelection {
	opts = opts.withDefaults()
	initial := *opts.Initial
	initial = initial.WithMinute(calendar.SnapMinute(initial.Minute(), opts.MinuteStep))

	return TimeSelection{
		opts:     opts,
		selected: initial,
		view:     ViewHours,
	}
}

// Selected returns the selected time.
func (s TimeSelection) Selected() calendar.TimeOfDay { return s.selected }

// View returns the active list.
func (s TimeSelection) View() TimeView { return s.view }

// Done reports whether Confirm or Cancel has been called.
func (s TimeSelection) Done() bool { return s.done }

// Use24Hour reports the configured clock style.
func (s TimeSelection) Use24Hour() bool { return s.opts.Use24Hour }

// MinuteStep returns the spacing of the minute list.
func (s TimeSelection) MinuteStep() int { return s.opts.MinuteStep }

// Cells builds the list for the active view.
func (s TimeSelection) Cells() []calendar.UnitCell {
	if s.view == ViewMinutes {
		return calendar.MinuteCells(s.selected, s.opts.MinuteStep)
	}
	return calendar.HourCells(s.selected, s.opts.Use24Hour)
}

// ShowHours switches to the hour list.
func (s *TimeSelection) ShowHours() bool {
	if s.view == ViewHours {
		return false
	}
	s.view = ViewHours
	return true
}

// ShowMinutes switches to the minute list.
func (s *TimeSelection) ShowMinutes() bool {
	if s.view == ViewMinutes {
		return false
	}
	s.view = ViewMinutes
	return true
}

// SelectHour sets the hour (0-23) and moves on to the minute list.
func (s *TimeSelection) SelectHour(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	switched := s.ShowMinutes()
	return s.set(s.selected.WithHour(hour)) || switched
}

// SelectMinute sets the minute, snapped onto the minute step.
func (s *TimeSelection) SelectMinute(minute int) bool {
	if minute < 0 || minute > 59 {
		return false
	}
	return s.set(s.selected.WithMinute(calendar.SnapMinute(minute, s.opts.MinuteStep)))
}

// TogglePeriod flips between AM and PM. It is a no-op on a 24-hour clock.
func (s *TimeSelection) TogglePeriod() bool {
	if s.opts.Use24Hour {
		return false
	}
	return s.set(s.selected.TogglePeriod())
}

// Confirm hands the selected time to the host. Only the first Confirm or
// Cancel reaches the host.
func (s *TimeSelection) Confirm() calendar.TimeOfDay {
	if s.done {
		return s.selected
	}
	s.done = true
	s.opts.Logger.With("time", s.selected.String()).Info("time confirmed")
	if s.opts.OnConfirm != nil {
		s.opts.OnConfirm(s.selected)
	}
	return s.selected
}

// Cancel signals dismissal to the host.
func (s *TimeSelection) Cancel() {
	if s.done {
		return
	}
	s.done = true
	s.opts.Logger.Info("time selection cancelled")
	if s.opts.OnCancel != nil {
		s.opts.OnCancel()
	}
}

func (s *TimeSelection) set(next calendar.TimeOfDay) bool {
	if next == s.selected {
		return false
	}
	s.selected = next
	if s.opts.OnSelectTime != nil {
		s.opts.OnSelectTime(next)
	}
	return true
}

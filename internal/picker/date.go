package picker

import (
	"github.com/alexisbeaulieu97/granular/internal/calendar"
)

// DateView is the sub-view a date picker shows.
type DateView int

const (
	ViewCalendar DateView = iota
	ViewYearList
)

func (v DateView) String() string {
	if v == ViewYearList {
		return "year-list"
	}
	return "calendar"
}

// DateSelection is the state of one date picker: the visible period, the
// selected date and the active view.
type DateSelection struct {
	opts     DateOptions
	period   calendar.Period
	selected calendar.Date
	view     DateView
	done     bool
}

// NewDateSelection seeds a selection from opts. The visible year is clamped
// into [MinYear, MaxYear]; the selected date keeps the caller's value.
func NewDateSelection(opts DateOptions) DateSelection {
	opts = opts.withDefaults()
	period := calendar.PeriodOf(opts.Initial)
	period.Year = clampYear(period.Year, opts.MinYear, opts.MaxYear)

	return DateSelection{
		opts:     opts,
		period:   period,
		selected: opts.Initial,
		view:     ViewCalendar,
	}
}

// Period returns the visible month.
func (s DateSelection) Period() calendar.Period { return s.period }

// Selected returns the selected date.
func (s DateSelection) Selected() calendar.Date { return s.selected }

// View returns the active sub-view.
func (s DateSelection) View() DateView { return s.view }

// Done reports whether Confirm or Cancel has been called.
func (s DateSelection) Done() bool { return s.done }

// MinYear returns the lower year bound.
func (s DateSelection) MinYear() int { return s.opts.MinYear }

// MaxYear returns the upper year bound.
func (s DateSelection) MaxYear() int { return s.opts.MaxYear }

// Today returns the current day according to the configured clock.
func (s DateSelection) Today() calendar.Date { return calendar.Today(s.opts.Clock) }

// Cells builds the month grid for the current state.
func (s DateSelection) Cells() []calendar.DayCell {
	return calendar.BuildMonthGrid(s.period, s.selected, s.Today())
}

// Years lists the years shown by the year list.
func (s DateSelection) Years() []int {
	years := make([]int, 0, s.opts.MaxYear-s.opts.MinYear+1)
	for y := s.opts.MinYear; y <= s.opts.MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// OpenYearList switches from the calendar to the year list.
func (s *DateSelection) OpenYearList() bool {
	if s.view == ViewYearList {
		return false
	}
	s.view = ViewYearList
	s.opts.Logger.Debug("year list opened")
	return true
}

// CloseYearList returns to the calendar without changing the year.
func (s *DateSelection) CloseYearList() bool {
	if s.view == ViewCalendar {
		return false
	}
	s.view = ViewCalendar
	return true
}

// ChooseYear moves the visible period to year and returns to the calendar.
// The selected date is not touched. Years outside the bounds are ignored.
func (s *DateSelection) ChooseYear(year int) bool {
	if !s.inBounds(year) {
		s.opts.Logger.With("year", year).Debug("year outside bounds ignored")
		return false
	}
	s.period = s.period.WithYear(year)
	s.view = ViewCalendar
	s.opts.Logger.With("period", s.period.String()).Debug("year chosen")
	return true
}

// SelectDay makes d the selected date. The visible period and view are
// unchanged. The live observer only fires when the value actually changes.
func (s *DateSelection) SelectDay(d calendar.Date) bool {
	if d.Equal(s.selected) {
		return false
	}
	s.selected = d
	if s.opts.OnSelectDate != nil {
		s.opts.OnSelectDate(d)
	}
	return true
}

// ShiftMonth moves the visible period by months. The move is rejected when
// the resulting year leaves [MinYear, MaxYear].
func (s *DateSelection) ShiftMonth(months int) bool {
	next := s.period.Shift(months)
	if !s.inBounds(next.Year) {
		s.opts.Logger.WithFields(map[string]any{
			"from": s.period.String(),
			"to":   next.String(),
		}).Debug("month navigation rejected")
		return false
	}
	s.period = next
	return true
}

// Confirm hands the selected date to the host. Only the first Confirm or
// Cancel reaches the host.
func (s *DateSelection) Confirm() calendar.Date {
	if s.done {
		return s.selected
	}
	s.done = true
	s.opts.Logger.With("date", s.selected.String()).Info("date confirmed")
	if s.opts.OnConfirm != nil {
		s.opts.OnConfirm(s.selected)
	}
	return s.selected
}

// Cancel signals dismissal to the host without touching the selection.
func (s *DateSelection) Cancel() {
	if s.done {
		return
	}
	s.done = true
	s.opts.Logger.Info("date selection cancelled")
	if s.opts.OnCancel != nil {
		s.opts.OnCancel()
	}
}

func (s DateSelection) inBounds(year int) bool {
	return year >= s.opts.MinYear && year <= s.opts.MaxYear
}

func clampYear(year, lo, hi int) int {
	return min(max(year, lo), hi)
}

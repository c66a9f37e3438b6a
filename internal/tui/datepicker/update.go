package datepicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.selection.Done() {
			return m, nil
		}
		if m.selection.View() == picker.ViewYearList {
			return m.handleYearListKey(msg)
		}
		return m.handleCalendarKey(msg)
	}

	return m, nil
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()

	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(calendar.DaysPerWeek)

	case key.Matches(msg, m.keys.Select):
		m.selection.SelectDay(m.focus)

	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)

	case key.Matches(msg, m.keys.YearList):
		if m.selection.OpenYearList() {
			m.yearQuery = ""
			m.refreshYears()
		}
	}

	return m, nil
}

func (m Model) handleYearListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '0' && r[0] <= '9' {
		m.yearQuery += string(r)
		m.refreshYears()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.selection.CloseYearList()

	case key.Matches(msg, m.keys.Erase):
		if n := len(m.yearQuery); n > 0 {
			m.yearQuery = m.yearQuery[:n-1]
			m.refreshYears()
		}

	case key.Matches(msg, m.keys.Left):
		m.moveYearFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveYearFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveYearFocus(-yearColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveYearFocus(yearColumns)

	case key.Matches(msg, m.keys.Select):
		year, ok := m.FocusedYear()
		if ok && m.selection.ChooseYear(year) {
			m.focus = focusFor(m.selection.Period(), m.focus)
		}

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()
	}

	return m, nil
}

// moveFocus moves the cursor by days. Leaving the visible month shifts the
// period, which the year bounds may refuse.
func (m *Model) moveFocus(days int) {
	next := m.focus.AddDays(days)
	period := m.selection.Period()
	if !period.Contains(next) {
		step := 1
		if next.Before(period.First()) {
			step = -1
		}
		if !m.selection.ShiftMonth(step) {
			return
		}
	}
	m.focus = next
}

func (m *Model) shiftMonth(months int) {
	if m.selection.ShiftMonth(months) {
		m.focus = focusFor(m.selection.Period(), m.focus)
	}
}

func (m *Model) moveYearFocus(delta int) {
	next := m.yearFocus + delta
	if next < 0 || next >= len(m.years) {
		return
	}
	m.yearFocus = next
}

func (m Model) confirm() (Model, tea.Cmd) {
	d := m.selection.Confirm()
	return m, func() tea.Msg { return ConfirmedMsg{Date: d} }
}

func (m Model) cancel() (Model, tea.Cmd) {
	m.selection.Cancel()
	return m, func() tea.Msg { return CancelledMsg{} }
}

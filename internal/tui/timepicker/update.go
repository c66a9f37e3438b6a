package timepicker

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
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		t := m.selection.Confirm()
		return m, func() tea.Msg { return ConfirmedMsg{Time: t} }

	case key.Matches(msg, m.keys.Cancel):
		m.selection.Cancel()
		return m, func() tea.Msg { return CancelledMsg{} }

	case key.Matches(msg, m.keys.Hours):
		m.selection.ShowHours()
	case key.Matches(msg, m.keys.Minutes):
		m.selection.ShowMinutes()

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Select):
		cell := m.FocusedUnit()
		if m.selection.View() == picker.ViewHours {
			m.selection.SelectHour(cell.Value)
		} else {
			m.selection.SelectMinute(cell.Value)
		}
		m.syncFocus()

	case key.Matches(msg, m.keys.AM):
		m.setMeridiem(calendar.AM)
	case key.Matches(msg, m.keys.PM):
		m.setMeridiem(calendar.PM)
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if m.selection.View() == picker.ViewMinutes {
		m.minuteFocus = clampIndex(m.minuteFocus+delta, len(m.minuteCells()))
		return
	}
	m.hourFocus = clampIndex(m.hourFocus+delta, len(m.hourCells()))
}

func (m *Model) setMeridiem(want calendar.Meridiem) {
	if m.selection.Selected().Meridiem() == want {
		return
	}
	if m.selection.TogglePeriod() {
		m.syncFocus()
	}
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}

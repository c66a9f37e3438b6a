// Package timepicker renders a picker.TimeSelection as a Bubble Tea
// component with side-by-side hour and minute lists.
package timepicker

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/theme"
)

const visibleUnits = 7

// Model is the Bubble Tea state of one time picker.
type Model struct {
	selection picker.TimeSelection
	theme     theme.Theme
	keys      KeyMap
	help      help.Model

	hourFocus   int
	minuteFocus int
}

// New creates a time picker. th is layered over theme.Default.
func New(opts picker.TimeOptions, th theme.Theme) Model {
	m := Model{
		selection: picker.NewTimeSelection(opts),
		theme:     theme.Default().Override(th),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.syncFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the underlying state machine.
func (m Model) Selection() picker.TimeSelection { return m.selection }

// FocusedUnit returns the cell under the cursor in the active list.
func (m Model) FocusedUnit() calendar.UnitCell {
	if m.selection.View() == picker.ViewMinutes {
		return m.minuteCells()[m.minuteFocus]
	}
	return m.hourCells()[m.hourFocus]
}

// Theme returns the resolved theme the picker renders with.
func (m Model) Theme() theme.Theme { return m.theme }

// WithKeyMap replaces the key bindings.
func (m Model) WithKeyMap(k KeyMap) Model {
	m.keys = k
	return m
}

func (m Model) hourCells() []calendar.UnitCell {
	return calendar.HourCells(m.selection.Selected(), m.selection.Use24Hour())
}

func (m Model) minuteCells() []calendar.UnitCell {
	return calendar.MinuteCells(m.selection.Selected(), m.selection.MinuteStep())
}

// syncFocus puts both cursors on the selected cells.
func (m *Model) syncFocus() {
	m.hourFocus = selectedIndex(m.hourCells())
	m.minuteFocus = selectedIndex(m.minuteCells())
}

func selectedIndex(cells []calendar.UnitCell) int {
	for i, c := range cells {
		if c.Selected {
			return i
		}
	}
	return 0
}

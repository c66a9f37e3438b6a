// Package datepicker renders a picker.DateSelection as a Bubble Tea
// component: a month grid with a year list, confirm and cancel buttons.
package datepicker

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/theme"
)

const (
	yearColumns     = 3
	yearVisibleRows = 6
)

// Model is the Bubble Tea state of one date picker.
type Model struct {
	selection picker.DateSelection
	theme     theme.Theme
	keys      KeyMap
	help      help.Model

	// focus is the keyboard cursor in the calendar view. It always lies in
	// the visible period.
	focus calendar.Date

	yearQuery string
	years     []int
	yearFocus int
}

// New creates a date picker. th is layered over theme.Default, so a
// partial theme is enough.
func New(opts picker.DateOptions, th theme.Theme) Model {
	sel := picker.NewDateSelection(opts)
	m := Model{
		selection: sel,
		theme:     theme.Default().Override(th),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.focus = focusFor(sel.Period(), sel.Selected())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the underlying state machine.
func (m Model) Selection() picker.DateSelection { return m.selection }

// Focus returns the day under the keyboard cursor.
func (m Model) Focus() calendar.Date { return m.focus }

// YearQuery returns the digits typed into the year list filter.
func (m Model) YearQuery() string { return m.yearQuery }

// Years returns the years currently listed, after filtering.
func (m Model) Years() []int { return m.years }

// FocusedYear returns the year under the cursor in the year list.
func (m Model) FocusedYear() (int, bool) {
	if m.yearFocus < 0 || m.yearFocus >= len(m.years) {
		return 0, false
	}
	return m.years[m.yearFocus], true
}

// Theme returns the resolved theme the picker renders with.
func (m Model) Theme() theme.Theme { return m.theme }

// WithKeyMap replaces the key bindings.
func (m Model) WithKeyMap(k KeyMap) Model {
	m.keys = k
	return m
}

// focusFor keeps the cursor on d when it is visible, otherwise on the same
// day number in p, clamped to the month length.
func focusFor(p calendar.Period, d calendar.Date) calendar.Date {
	if p.Contains(d) {
		return d
	}
	day := max(1, min(d.Day, calendar.DaysInMonth(p.Year, p.Month)))
	return calendar.Date{Year: p.Year, Month: p.Month, Day: day}
}

// refreshYears rebuilds the year list from the filter and moves the cursor
// to the visible year when it is listed.
func (m *Model) refreshYears() {
	all := m.selection.Years()
	if m.yearQuery == "" {
		m.years = all
	} else {
		labels := make([]string, len(all))
		for i, y := range all {
			labels[i] = strconv.Itoa(y)
		}
		matches := fuzzy.Find(m.yearQuery, labels)
		m.years = make([]int, 0, len(matches))
		for _, match := range matches {
			m.years = append(m.years, all[match.Index])
		}
	}

	m.yearFocus = 0
	for i, y := range m.years {
		if y == m.selection.Period().Year {
			m.yearFocus = i
			break
		}
	}
}

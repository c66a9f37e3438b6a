package datepicker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
)

// View renders the picker card followed by the key help.
func (m Model) View() string {
	var body string
	if m.selection.View() == picker.ViewYearList {
		body = m.renderYearList()
	} else {
		body = m.renderCalendar()
	}

	card := m.containerStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerStyle().Render(m.selection.Selected().Label()),
		body,
		m.renderActions(),
	))

	bindings := m.keys.ShortHelp()
	if m.selection.View() == picker.ViewYearList {
		bindings = m.keys.yearListHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left, card, m.help.ShortHelpView(bindings))
}

func (m Model) renderCalendar() string {
	rows := []string{m.renderMonthNav(), m.renderWeekdays()}
	for _, week := range calendar.Weeks(m.selection.Cells()) {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			label := ""
			if !cell.Placeholder {
				label = strconv.Itoa(cell.Day)
			}
			focused := !cell.Placeholder && cell.Date.Equal(m.focus)
			cells = append(cells, m.dayStyle(cell, focused).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderMonthNav() string {
	label := m.monthNavStyle().Render(m.selection.Period().String() + " ▾")
	arrows := m.arrowStyle().Render("‹") + m.arrowStyle().Render("›")
	return m.spread(label, arrows)
}

func (m Model) renderWeekdays() string {
	cells := make([]string, 0, calendar.DaysPerWeek)
	for _, wd := range calendar.Weekdays() {
		cells = append(cells, m.weekdayStyle(wd).Render(wd.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderYearList() string {
	title := "Select year"
	if m.yearQuery != "" {
		title += ": " + m.yearQuery
	}
	rows := []string{m.monthNavStyle().Render(title)}

	if len(m.years) == 0 {
		rows = append(rows, m.mutedStyle().Render("no matching years"))
		return m.yearContainer(rows)
	}

	total := (len(m.years) + yearColumns - 1) / yearColumns
	start := min(max(m.yearFocus/yearColumns-yearVisibleRows/2, 0), max(total-yearVisibleRows, 0))
	end := min(start+yearVisibleRows, total)

	visible := m.selection.Period().Year
	for r := start; r < end; r++ {
		cells := make([]string, 0, yearColumns)
		for c := range yearColumns {
			i := r*yearColumns + c
			if i >= len(m.years) {
				cells = append(cells, m.yearStyle(false, false).Render(""))
				continue
			}
			y := m.years[i]
			cells = append(cells, m.yearStyle(y == visible, i == m.yearFocus).Render(strconv.Itoa(y)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return m.yearContainer(rows)
}

func (m Model) yearContainer(rows []string) string {
	st := m.surface().Override(m.theme.Date.YearSelectorContainer)
	return st.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderActions() string {
	cancel := m.buttonStyle(m.theme.Date.CancelButton, m.theme.Date.CancelButtonText).Render("CANCEL")
	ok := m.buttonStyle(m.theme.Date.OKButton, m.theme.Date.OKButtonText).Render("OK")
	return m.spread("", cancel+ok)
}

// spread places left and right at the edges of the grid width.
func (m Model) spread(left, right string) string {
	gap := max(gridWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + m.surface().Render(strings.Repeat(" ", gap)) + right
}

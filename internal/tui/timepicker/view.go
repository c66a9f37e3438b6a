package timepicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/picker"
)

// View renders the picker card followed by the key help.
func (m Model) View() string {
	hoursActive := m.selection.View() == picker.ViewHours
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList("Hour", m.hourCells(), m.hourFocus, hoursActive),
		m.renderList("Min", m.minuteCells(), m.minuteFocus, !hoursActive),
	)
	header := m.renderHeader()
	width := max(lipgloss.Width(lists), lipgloss.Width(header))

	card := m.containerStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.spread(header, m.renderPeriods(), width),
		lists,
		m.spread("", m.renderActions(), width),
	))
	return lipgloss.JoinVertical(lipgloss.Left, card, m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderHeader() string {
	t := m.selection.Selected()
	hour := fmt.Sprintf("%02d", t.Hour())
	if !m.selection.Use24Hour() {
		hour = fmt.Sprintf("%d", t.Hour12())
	}
	hoursActive := m.selection.View() == picker.ViewHours
	text := m.unitHeaderStyle(hoursActive).Render(hour) +
		m.unitHeaderStyle(false).Render(":") +
		m.unitHeaderStyle(!hoursActive).Render(fmt.Sprintf("%02d", t.Minute()))
	return m.headerStyle().Render(text)
}

func (m Model) renderPeriods() string {
	if m.selection.Use24Hour() {
		return ""
	}
	current := m.selection.Selected().Meridiem()
	return m.periodStyle(current == calendar.AM).Render(calendar.AM.String()) +
		m.periodStyle(current == calendar.PM).Render(calendar.PM.String())
}

// renderList draws a scrolling window of cells around the cursor.
func (m Model) renderList(title string, cells []calendar.UnitCell, focus int, active bool) string {
	start := min(max(focus-visibleUnits/2, 0), max(len(cells)-visibleUnits, 0))
	end := min(start+visibleUnits, len(cells))

	rows := []string{m.listTitleStyle(active).Render(title)}
	for i := start; i < end; i++ {
		rows = append(rows, m.unitStyle(cells[i].Selected, active && i == focus).Render(cells[i].Label))
	}
	return m.listStyle().Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderActions() string {
	cancel := m.buttonStyle(m.theme.Time.CancelButton, m.theme.Time.CancelButtonText).Render("CANCEL")
	ok := m.buttonStyle(m.theme.Time.OKButton, m.theme.Time.OKButtonText).Render("OK")
	return cancel + ok
}

func (m Model) spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + m.surface().Render(strings.Repeat(" ", gap)) + right
}

package datepicker

import (
	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/theme"
)

const (
	cellWidth = 4
	yearWidth = 8
	gridWidth = cellWidth * calendar.DaysPerWeek
)

// Each region style is a cascade of built-in defaults derived from the
// theme colours followed by the caller override for that region. Container
// layers come first so text layers win on shared fields.

func (m Model) surface() theme.Style {
	return theme.Bg(m.theme.Surface)
}

func (m Model) containerStyle() theme.Style {
	return theme.Merge(
		m.surface(),
		theme.Style{
			Border:      theme.Ptr("rounded"),
			BorderColor: theme.Ptr(m.theme.Divider),
			PaddingX:    theme.Ptr(1),
		},
		m.theme.Date.Container,
	)
}

func (m Model) headerStyle() theme.Style {
	return theme.Merge(
		theme.Bg(m.theme.Secondary),
		theme.Style{Width: theme.Ptr(gridWidth), PaddingX: theme.Ptr(1)},
		m.theme.Date.SelectedDateHeader,
		theme.Fg(m.theme.Primary),
		theme.Bold(true),
		m.theme.Date.SelectedDateHeaderText,
	)
}

func (m Model) monthNavStyle() theme.Style {
	return theme.Merge(
		m.surface(),
		m.theme.Date.MonthNavigationContainer,
		theme.Fg(m.theme.HeaderText),
		theme.Bold(true),
		m.theme.Date.MonthNavigationText,
	)
}

func (m Model) arrowStyle() theme.Style {
	return theme.Merge(
		m.surface(),
		theme.Style{PaddingX: theme.Ptr(1)},
		m.theme.Date.ArrowButton,
		theme.Fg(m.theme.Arrow),
		theme.Bold(true),
		m.theme.Date.ArrowIcon,
	)
}

func (m Model) weekdayStyle(wd calendar.Weekday) theme.Style {
	layers := []theme.Style{
		m.surface(),
		theme.Style{Width: theme.Ptr(cellWidth), Align: theme.Ptr("center")},
		m.theme.Date.DayOfWeekContainer,
		theme.Fg(m.theme.Text),
		theme.Bold(true),
		m.theme.Date.DayOfWeekText,
	}
	if wd.Weekend {
		layers = append(layers, m.theme.Date.WeekendText)
	}
	return theme.Merge(layers...)
}

// dayStyle resolves the cascade of one grid cell: base, colour defaults,
// caller day override, weekend, today, selected, then the cursor.
func (m Model) dayStyle(cell calendar.DayCell, focused bool) theme.Style {
	base := theme.Merge(
		m.surface(),
		theme.Style{Width: theme.Ptr(cellWidth), Align: theme.Ptr("center")},
		m.theme.Date.DayContainer,
	)
	if cell.Placeholder {
		return base
	}

	container := []theme.Style{base}
	text := []theme.Style{theme.Fg(m.theme.Text), m.theme.Date.DayText}

	if cell.Weekend {
		if m.theme.Date.WeekendText.IsZero() {
			text = append(text, theme.Fg(m.theme.Muted))
		} else {
			text = append(text, m.theme.Date.WeekendText)
		}
	}
	if cell.Today {
		container = append(container, m.theme.Date.TodayContainer)
		text = append(text, theme.Fg(m.theme.Primary), theme.Bold(true), m.theme.Date.TodayText)
	}
	if cell.Selected {
		container = append(container, theme.Bg(m.theme.Primary), m.theme.Date.SelectedDayContainer)
		text = append(text, theme.Fg(m.theme.OnPrimary), theme.Bold(true), m.theme.Date.SelectedDayText)
	}

	st := theme.Merge(container...).Override(theme.Merge(text...))
	if focused {
		st = st.Override(theme.Merge(theme.Style{Underline: theme.Ptr(true)}, m.theme.Date.FocusedDay))
	}
	return st
}

func (m Model) buttonStyle(container, text theme.Style) theme.Style {
	return theme.Merge(
		m.surface(),
		theme.Style{PaddingX: theme.Ptr(1)},
		container,
		theme.Fg(m.theme.Primary),
		theme.Bold(true),
		text,
	)
}

func (m Model) yearStyle(selected, focused bool) theme.Style {
	layers := []theme.Style{
		m.surface(),
		theme.Style{Width: theme.Ptr(yearWidth), Align: theme.Ptr("center")},
		m.theme.Date.YearSelectorButton,
		theme.Fg(m.theme.Text),
		m.theme.Date.YearSelectorButtonText,
	}
	if selected {
		layers = append(layers,
			theme.Bg(m.theme.Primary),
			m.theme.Date.SelectedYearSelectorButton,
			theme.Fg(m.theme.OnPrimary),
			theme.Bold(true),
			m.theme.Date.SelectedYearSelectorButtonText,
		)
	}
	if focused {
		layers = append(layers, theme.Style{Underline: theme.Ptr(true)}, m.theme.Date.FocusedDay)
	}
	return theme.Merge(layers...)
}

func (m Model) mutedStyle() theme.Style {
	return theme.Merge(m.surface(), theme.Fg(m.theme.Muted))
}

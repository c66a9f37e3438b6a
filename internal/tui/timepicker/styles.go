package timepicker

import "github.com/alexisbeaulieu97/granular/internal/theme"

const unitWidth = 6

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
		m.theme.Time.Container,
	)
}

func (m Model) headerStyle() theme.Style {
	return theme.Merge(
		theme.Bg(m.theme.Secondary),
		theme.Style{PaddingX: theme.Ptr(1)},
		m.theme.Time.Header,
		theme.Fg(m.theme.HeaderText),
		theme.Bold(true),
		m.theme.Time.HeaderText,
	)
}

// unitHeaderStyle styles the hour or minute digits of the header; the unit
// whose list is active is highlighted.
func (m Model) unitHeaderStyle(active bool) theme.Style {
	st := m.headerStyle().Override(theme.Style{PaddingX: theme.Ptr(0)})
	if active {
		st = st.Override(theme.Merge(theme.Fg(m.theme.Primary), m.theme.Time.ActiveUnitText))
	}
	return st
}

func (m Model) periodStyle(selected bool) theme.Style {
	layers := []theme.Style{
		m.surface(),
		theme.Style{PaddingX: theme.Ptr(1)},
		m.theme.Time.PeriodButton,
		theme.Fg(m.theme.Muted),
		m.theme.Time.PeriodButtonText,
	}
	if selected {
		layers = append(layers, theme.Fg(m.theme.Primary), theme.Bold(true), m.theme.Time.SelectedPeriodText)
	}
	return theme.Merge(layers...)
}

func (m Model) listStyle() theme.Style {
	return theme.Merge(m.surface(), theme.Style{PaddingX: theme.Ptr(1)}, m.theme.Time.ListContainer)
}

func (m Model) listTitleStyle(active bool) theme.Style {
	st := theme.Merge(
		m.surface(),
		theme.Style{Width: theme.Ptr(unitWidth), Align: theme.Ptr("center")},
		theme.Fg(m.theme.Muted),
	)
	if active {
		st = st.Override(theme.Merge(theme.Fg(m.theme.Primary), theme.Bold(true)))
	}
	return st
}

// unitStyle resolves the cascade of one list entry: base, caller unit
// override, selected, then the cursor when its list is active.
func (m Model) unitStyle(selected, focused bool) theme.Style {
	container := []theme.Style{
		m.surface(),
		theme.Style{Width: theme.Ptr(unitWidth), Align: theme.Ptr("center")},
		m.theme.Time.UnitContainer,
	}
	text := []theme.Style{theme.Fg(m.theme.Text), m.theme.Time.UnitText}
	if selected {
		container = append(container, theme.Bg(m.theme.Primary), m.theme.Time.SelectedUnitContainer)
		text = append(text, theme.Fg(m.theme.OnPrimary), theme.Bold(true), m.theme.Time.SelectedUnitText)
	}

	st := theme.Merge(container...).Override(theme.Merge(text...))
	if focused {
		st = st.Override(theme.Merge(theme.Style{Underline: theme.Ptr(true)}, m.theme.Time.FocusedUnit))
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

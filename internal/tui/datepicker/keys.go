package datepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the date picker. Year-list bindings apply
// only while the year list is open.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	YearList  key.Binding
	Back      key.Binding
	Erase     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		YearList:  key.NewBinding(key.WithKeys("y", "tab"), key.WithHelp("y", "year")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Erase:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase filter")),
		Confirm:   key.NewBinding(key.WithKeys("o", "ctrl+s"), key.WithHelp("o", "ok")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap for the calendar view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.YearList, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.PrevMonth, k.NextMonth, k.YearList},
		{k.Back, k.Erase, k.Confirm, k.Cancel},
	}
}

func (k KeyMap) yearListHelp() []key.Binding {
	digits := key.NewBinding(key.WithKeys("0"), key.WithHelp("0-9", "filter"))
	return []key.Binding{k.Select, digits, k.Erase, k.Back}
}

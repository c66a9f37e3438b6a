package timepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the time picker.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Hours   key.Binding
	Minutes key.Binding
	Select  key.Binding
	AM      key.Binding
	PM      key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Hours:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "hours")),
		Minutes: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "minutes")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		AM:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "am")),
		PM:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pm")),
		Confirm: key.NewBinding(key.WithKeys("o", "ctrl+s"), key.WithHelp("o", "ok")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hours, k.Minutes, k.Select, k.AM, k.PM, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Hours, k.Minutes},
		{k.Select, k.AM, k.PM},
		{k.Confirm, k.Cancel},
	}
}

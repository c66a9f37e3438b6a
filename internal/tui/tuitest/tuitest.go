// Package tuitest holds helpers for driving Bubble Tea models in tests.
package tuitest

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+c":    tea.KeyCtrlC,
	" ":         tea.KeySpace,
}

// Key builds the tea.KeyMsg a terminal would deliver for s, using the names
// accepted by key.WithKeys.
func Key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Press feeds keys to m one at a time, runs every returned command
// synchronously and collects the resulting messages.
func Press(m tea.Model, keys ...string) (tea.Model, []tea.Msg) {
	var msgs []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(Key(k))
		if cmd != nil {
			if msg := cmd(); msg != nil {
				msgs = append(msgs, msg)
			}
		}
	}
	return m, msgs
}

// Plain renders m and strips escape sequences.
func Plain(m tea.Model) string {
	return ansi.Strip(m.View())
}

// Drive is like Press but feeds every message produced by a command back
// into the model, the way a running program would, until the chain ends or
// a tea.QuitMsg is produced. It returns every message seen.
func Drive(m tea.Model, keys ...string) (tea.Model, []tea.Msg) {
	var seen []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(Key(k))
		for cmd != nil {
			msg := cmd()
			if msg == nil {
				break
			}
			seen = append(seen, msg)
			if _, quit := msg.(tea.QuitMsg); quit {
				break
			}
			m, cmd = m.Update(msg)
		}
	}
	return m, seen
}

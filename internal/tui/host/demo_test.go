package host

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/logger"
	"github.com/alexisbeaulieu97/granular/internal/tui/tuitest"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func demo(t *testing.T, m tea.Model) Demo {
	t.Helper()
	d, ok := m.(Demo)
	require.True(t, ok)
	return d
}

func TestDemoInitialState(t *testing.T) {
	d := NewDemo(DemoOptions{Clock: fixedNow})

	assert.Equal(t, calendar.NewDate(2024, time.February, 10), d.Date())
	assert.Equal(t, "09:30", d.Time().String())
	assert.Equal(t, ModalNone, d.Modal())
	assert.Nil(t, d.Init())

	out := tuitest.Plain(d)
	assert.Contains(t, out, "My App")
	assert.Contains(t, out, "Select Date (2/10/2024)")
	assert.Contains(t, out, "Select Time (9:30 AM)")
}

func TestDemoDateModalConfirm(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	d := NewDemo(DemoOptions{Clock: fixedNow, Logger: log})

	m, _ := tuitest.Drive(d, "enter")
	require.Equal(t, ModalDate, demo(t, m).Modal())
	assert.Contains(t, tuitest.Plain(m), "February 2024")

	m, msgs := tuitest.Drive(m, "]", "enter", "o")
	for _, msg := range msgs {
		_, quit := msg.(tea.QuitMsg)
		assert.False(t, quit, "confirming a modal keeps the demo running")
	}

	got := demo(t, m)
	assert.Equal(t, ModalNone, got.Modal())
	assert.Equal(t, calendar.NewDate(2024, time.March, 10), got.Date())
	assert.Contains(t, tuitest.Plain(got), "Select Date (3/10/2024)")
	assert.Contains(t, buf.String(), "demo date updated")
}

func TestDemoTimeModalUsesGreenPrimary(t *testing.T) {
	d := NewDemo(DemoOptions{Clock: fixedNow})

	m, _ := tuitest.Drive(d, "down", "enter")
	got := demo(t, m)
	require.Equal(t, ModalTime, got.Modal())
	assert.Equal(t, TimePickerPrimary, got.timePicker.Theme().Primary)

	m, _ = tuitest.Drive(m, "p", "o")
	got = demo(t, m)
	assert.Equal(t, ModalNone, got.Modal())
	assert.Equal(t, "21:30", got.Time().String())
	assert.Contains(t, tuitest.Plain(got), "Select Time (9:30 PM)")
}

func TestDemoCancelKeepsValue(t *testing.T) {
	d := NewDemo(DemoOptions{Clock: fixedNow})

	m, _ := tuitest.Drive(d, "enter", "right", "enter", "esc")
	got := demo(t, m)
	assert.Equal(t, ModalNone, got.Modal())
	assert.Equal(t, calendar.NewDate(2024, time.February, 10), got.Date())
}

func TestDemoQuit(t *testing.T) {
	d := NewDemo(DemoOptions{Clock: fixedNow})

	_, msgs := tuitest.Drive(d, "q")
	require.Len(t, msgs, 1)
	assert.Equal(t, tea.QuitMsg{}, msgs[0])

	// q inside a modal cancels the picker instead of quitting.
	m, msgs := tuitest.Drive(d, "enter", "q")
	assert.Equal(t, ModalNone, demo(t, m).Modal())
	for _, msg := range msgs {
		_, quit := msg.(tea.QuitMsg)
		assert.False(t, quit)
	}
}

func TestDemoOverlayFillsScreen(t *testing.T) {
	d := NewDemo(DemoOptions{Clock: fixedNow})

	m, _ := d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Len(t, splitLines(tuitest.Plain(m)), 30)

	m, _ = tuitest.Drive(m, "enter")
	assert.Len(t, splitLines(tuitest.Plain(m)), 30)
}

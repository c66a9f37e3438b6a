// Package host embeds the pickers in Bubble Tea programs: a standalone
// runner for one picker and the demo application with modal pickers.
package host

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/tui/datepicker"
	"github.com/alexisbeaulieu97/granular/internal/tui/timepicker"
	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

// Status tells how a picker session ended.
type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Result is the outcome of a standalone session. Only the field matching
// the picker kind is set.
type Result struct {
	Status Status
	Date   calendar.Date
	Time   calendar.TimeOfDay
}

// Err returns granularerrors.ErrCancelled unless the value was confirmed.
func (r Result) Err() error {
	if r.Status != StatusConfirmed {
		return granularerrors.ErrCancelled
	}
	return nil
}

// Standalone runs a single picker full-screen and quits once it is
// confirmed or cancelled.
type Standalone struct {
	picker tea.Model
	result Result
	width  int
	height int
}

// NewStandalone wraps a datepicker.Model or timepicker.Model.
func NewStandalone(picker tea.Model) Standalone {
	return Standalone{picker: picker}
}

// Init implements tea.Model.
func (s Standalone) Init() tea.Cmd {
	return s.picker.Init()
}

// Update implements tea.Model.
func (s Standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			s.result.Status = StatusCancelled
			return s, tea.Quit
		}

	case datepicker.ConfirmedMsg:
		s.result = Result{Status: StatusConfirmed, Date: msg.Date}
		return s, tea.Quit
	case timepicker.ConfirmedMsg:
		s.result = Result{Status: StatusConfirmed, Time: msg.Time}
		return s, tea.Quit
	case datepicker.CancelledMsg, timepicker.CancelledMsg:
		s.result.Status = StatusCancelled
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

// View implements tea.Model. The picker is centred once the terminal size
// is known.
func (s Standalone) View() string {
	if s.result.Status != StatusPending {
		return ""
	}
	if s.width == 0 || s.height == 0 {
		return s.picker.View()
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, s.picker.View())
}

// Result returns the outcome recorded so far.
func (s Standalone) Result() Result {
	return s.result
}

// Run executes picker in its own program until it finishes.
func Run(ctx context.Context, picker tea.Model, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewStandalone(picker), opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}
	s, ok := final.(Standalone)
	if !ok {
		return Result{}, fmt.Errorf("run picker: unexpected model %T", final)
	}
	return s.Result(), nil
}

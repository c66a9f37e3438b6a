package host

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/logger"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/theme"
	"github.com/alexisbeaulieu97/granular/internal/tui/datepicker"
	"github.com/alexisbeaulieu97/granular/internal/tui/timepicker"
)

// TimePickerPrimary is the primary colour the demo gives its time picker.
const TimePickerPrimary = "#28a745"

const (
	demoBackground = "#F0F2F5"
	demoOverlay    = "#3A3A3A"
	demoDateButton = "#007BFF"
	demoDateLayout = "1/2/2006"
)

var (
	demoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2C3E50")).
			Background(lipgloss.Color(demoBackground)).
			MarginBottom(1)

	demoButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(1, 3).
			MarginTop(1)

	demoHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#757575")).
			Background(lipgloss.Color(demoBackground)).
			MarginTop(1)
)

// DemoOptions configures the pickers the demo opens.
type DemoOptions struct {
	Theme      theme.Theme
	MinYear    int
	MaxYear    int
	Use24Hour  bool
	MinuteStep int
	Clock      calendar.Clock
	Logger     *logger.Logger
}

// Modal identifies the picker currently shown over the demo.
type Modal int

const (
	ModalNone Modal = iota
	ModalDate
	ModalTime
)

type demoKeys struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

var defaultDemoKeys = demoKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
	Down: key.NewBinding(key.WithKeys("down", "j", "tab")),
	Open: key.NewBinding(key.WithKeys("enter", " ")),
	Quit: key.NewBinding(key.WithKeys("q", "esc")),
}

// Demo is a small app with one button per picker. Each button opens its
// picker in a centred modal; confirming stores the value on the button and
// closes the modal, cancelling just closes it.
type Demo struct {
	opts DemoOptions
	keys demoKeys

	selectedDate calendar.Date
	selectedTime calendar.TimeOfDay

	focus      int
	modal      Modal
	datePicker datepicker.Model
	timePicker timepicker.Model

	width  int
	height int
}

// NewDemo starts with today's date and 9:30 AM.
func NewDemo(opts DemoOptions) Demo {
	initial, _ := calendar.NewTimeOfDay(9, 30)
	return Demo{
		opts:         opts,
		keys:         defaultDemoKeys,
		selectedDate: calendar.Today(opts.Clock),
		selectedTime: initial,
	}
}

// Date returns the last confirmed date.
func (d Demo) Date() calendar.Date { return d.selectedDate }

// Time returns the last confirmed time.
func (d Demo) Time() calendar.TimeOfDay { return d.selectedTime }

// Modal returns the picker currently open.
func (d Demo) Modal() Modal { return d.modal }

// Init implements tea.Model.
func (d Demo) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d Demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return d, tea.Quit
		}
		if d.modal == ModalNone {
			return d.handleKeyPress(msg)
		}

	case datepicker.ConfirmedMsg:
		d.selectedDate = msg.Date
		d.modal = ModalNone
		d.opts.Logger.With("date", msg.Date.String()).Info("demo date updated")
		return d, nil
	case timepicker.ConfirmedMsg:
		d.selectedTime = msg.Time
		d.modal = ModalNone
		d.opts.Logger.With("time", msg.Time.String()).Info("demo time updated")
		return d, nil
	case datepicker.CancelledMsg, timepicker.CancelledMsg:
		d.modal = ModalNone
		return d, nil
	}

	return d.updateModal(msg)
}

func (d Demo) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Quit):
		return d, tea.Quit
	case key.Matches(msg, d.keys.Up):
		d.focus = 0
	case key.Matches(msg, d.keys.Down):
		d.focus = 1
	case key.Matches(msg, d.keys.Open):
		if d.focus == 0 {
			d.openDatePicker()
		} else {
			d.openTimePicker()
		}
	}
	return d, nil
}

func (d Demo) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next tea.Model
		cmd  tea.Cmd
	)
	switch d.modal {
	case ModalDate:
		next, cmd = d.datePicker.Update(msg)
		d.datePicker = next.(datepicker.Model)
	case ModalTime:
		next, cmd = d.timePicker.Update(msg)
		d.timePicker = next.(timepicker.Model)
	}
	return d, cmd
}

func (d *Demo) openDatePicker() {
	d.datePicker = datepicker.New(picker.DateOptions{
		Initial: d.selectedDate,
		MinYear: d.opts.MinYear,
		MaxYear: d.opts.MaxYear,
		Clock:   d.opts.Clock,
		Logger:  d.opts.Logger,
	}, d.opts.Theme)
	d.modal = ModalDate
}

func (d *Demo) openTimePicker() {
	initial := d.selectedTime
	th := d.opts.Theme
	th.Primary = TimePickerPrimary
	d.timePicker = timepicker.New(picker.TimeOptions{
		Initial:    &initial,
		Use24Hour:  d.opts.Use24Hour,
		MinuteStep: d.opts.MinuteStep,
		Clock:      d.opts.Clock,
		Logger:     d.opts.Logger,
	}, th)
	d.modal = ModalTime
}

// View implements tea.Model.
func (d Demo) View() string {
	switch d.modal {
	case ModalDate:
		return d.overlay(d.datePicker.View())
	case ModalTime:
		return d.overlay(d.timePicker.View())
	}

	dateButton := demoButtonStyle.Background(lipgloss.Color(demoDateButton)).
		Render(fmt.Sprintf("Select Date (%s)", d.selectedDate.Time(nil).Format(demoDateLayout)))
	timeButton := demoButtonStyle.Background(lipgloss.Color(TimePickerPrimary)).
		Render(fmt.Sprintf("Select Time (%s)", calendar.FormatTime(d.selectedTime.Hour(), d.selectedTime.Minute())))
	markers := [2]string{"  ", "  "}
	markers[d.focus] = "▸ "
	dateButton = lipgloss.JoinHorizontal(lipgloss.Center, markers[0], dateButton)
	timeButton = lipgloss.JoinHorizontal(lipgloss.Center, markers[1], timeButton)

	body := lipgloss.JoinVertical(lipgloss.Center,
		demoTitleStyle.Render("My App"),
		lipgloss.JoinVertical(lipgloss.Left, dateButton, timeButton),
		demoHintStyle.Render("↑/↓ choose • enter open • q quit"),
	)
	if d.width == 0 || d.height == 0 {
		return body
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(demoBackground)))
}

func (d Demo) overlay(content string) string {
	if d.width == 0 || d.height == 0 {
		return content
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(demoOverlay)))
}

// RunDemo executes the demo until the user quits and returns its final
// state.
func RunDemo(ctx context.Context, d Demo, opts ...tea.ProgramOption) (Demo, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(d, opts...).Run()
	if err != nil {
		return d, fmt.Errorf("run demo: %w", err)
	}
	out, ok := final.(Demo)
	if !ok {
		return d, fmt.Errorf("run demo: unexpected model %T", final)
	}
	return out, nil
}

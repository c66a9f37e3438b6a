package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/config"
	"github.com/alexisbeaulieu97/granular/internal/export"
	"github.com/alexisbeaulieu97/granular/internal/logger"
	"github.com/alexisbeaulieu97/granular/internal/tui/host"
)

// Seams replaced by tests. The UI reads keys from stdin and draws on
// stderr so stdout carries only the confirmed value.
var (
	clock calendar.Clock = calendar.SystemClock{}

	uiInput  io.Reader = os.Stdin
	uiOutput io.Writer = os.Stderr

	isTerminal = func() bool {
		return isTTY(uiInput) && isTTY(uiOutput)
	}

	runPicker = func(ctx context.Context, m tea.Model) (host.Result, error) {
		return host.Run(ctx, m, uiOptions()...)
	}

	runDemo = func(ctx context.Context, d host.Demo) (host.Demo, error) {
		return host.RunDemo(ctx, d, uiOptions()...)
	}
)

func uiOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(uiInput),
		tea.WithOutput(uiOutput),
		tea.WithAltScreen(),
	}
}

func isTTY(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// appContext carries what every command needs once flags are parsed.
type appContext struct {
	cfg    *config.Config
	log    *logger.Logger
	format export.Format
	flags  *rootFlags

	closers []io.Closer
}

func newAppContext(flags *rootFlags, component string) (*appContext, error) {
	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}

	app := &appContext{format: format, flags: flags}

	app.log, err = app.openLogger(component)
	if err != nil {
		return nil, err
	}

	app.cfg, err = config.Load(flags.configPath)
	if err != nil {
		app.log.Error(err, "configuration rejected")
		app.Close()
		return nil, err
	}
	app.log.WithFields(map[string]any{
		"config":   flags.configPath,
		"min_year": app.cfg.Date.MinYear,
		"max_year": app.cfg.Date.MaxYear,
	}).Debug("configuration loaded")

	return app, nil
}

// openLogger writes JSON lines to --log-file when given, or console lines at
// debug level with --verbose. Without a file, logs are dropped because the
// terminal belongs to the picker.
func (a *appContext) openLogger(component string) (*logger.Logger, error) {
	if a.flags.logFile == "" {
		return logger.Nop(), nil
	}

	f, err := os.OpenFile(a.flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.closers = append(a.closers, f)

	level := a.flags.logLevel
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: a.flags.verbose,
		Writer:        f,
		Component:     component,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return log, nil
}

func (a *appContext) requireTerminal(command string) error {
	if !isTerminal() {
		err := fmt.Errorf("granular %s needs an interactive terminal on stdin and stderr", command)
		a.log.Error(err, "no terminal")
		return err
	}
	return nil
}

// Close releases the log file.
func (a *appContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

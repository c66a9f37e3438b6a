package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/tui/host"
	"github.com/alexisbeaulieu97/granular/internal/tui/tuitest"
)

var fixedNow = calendar.FixedClock(time.Date(2024, time.February, 10, 9, 30, 0, 0, time.Local))

// stubTerminal pretends stdin is a terminal and replays keys into the
// picker instead of starting a real program.
func stubTerminal(t *testing.T, keys ...string) {
	t.Helper()

	origTerminal, origRun, origDemo, origClock := isTerminal, runPicker, runDemo, clock
	t.Cleanup(func() {
		isTerminal, runPicker, runDemo, clock = origTerminal, origRun, origDemo, origClock
	})

	clock = fixedNow
	isTerminal = func() bool { return true }
	runPicker = func(_ context.Context, m tea.Model) (host.Result, error) {
		final, _ := tuitest.Drive(host.NewStandalone(m), keys...)
		return final.(host.Standalone).Result(), nil
	}
	runDemo = func(_ context.Context, d host.Demo) (host.Demo, error) {
		final, _ := tuitest.Drive(d, keys...)
		return final.(host.Demo), nil
	}
}

func stubNoTerminal(t *testing.T) {
	t.Helper()

	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return false }
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

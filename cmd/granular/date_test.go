package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

func TestDateCommand_TextOutput(t *testing.T) {
	stubTerminal(t, "right", "enter", "o")

	out, err := execute(t, "date", "--initial", "2024-02-10")
	require.NoError(t, err)
	require.Equal(t, "2024-02-11\n", out)
}

func TestDateCommand_DefaultsToToday(t *testing.T) {
	stubTerminal(t, "o")

	out, err := execute(t, "date")
	require.NoError(t, err)
	require.Equal(t, "2024-02-10\n", out)
}

func TestDateCommand_JSONOutput(t *testing.T) {
	stubTerminal(t, "]", "enter", "ctrl+s")

	out, err := execute(t, "date", "--initial", "2024-01-31", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "date", got["kind"])
	require.Equal(t, "2024-02-29", got["date"])
	require.Equal(t, "Thu, Feb 29", got["display"])
}

func TestDateCommand_ICSToFile(t *testing.T) {
	stubTerminal(t, "o")
	path := filepath.Join(t.TempDir(), "date.ics")

	out, err := execute(t, "date", "--initial", "2024-02-10", "-f", "ics", "-o", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "DTSTART;VALUE=DATE:20240210")
}

func TestDateCommand_Cancel(t *testing.T) {
	stubTerminal(t, "right", "enter", "esc")

	out, err := execute(t, "date", "--initial", "2024-02-10")
	require.ErrorIs(t, err, granularerrors.ErrCancelled)
	require.Equal(t, "selection cancelled", err.Error())
	require.Empty(t, out)
}

func TestDateCommand_ConfigFile(t *testing.T) {
	stubTerminal(t, "o")
	cfg := writeFile(t, "granular.yaml", `
date:
  initial: "2023-05-05"
  min_year: 2000
  max_year: 2030
theme:
  primary_color: "#28a745"
`)

	out, err := execute(t, "date", "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "2023-05-05\n", out)
}

func TestDateCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantField string
		wantParse bool
	}{
		{name: "bad format", args: []string{"date", "--format", "xml"}, wantField: "format"},
		{name: "bad initial", args: []string{"date", "--initial", "2024-13-01"}, wantParse: true},
		{name: "min above max", args: []string{"date", "--min-year", "2060"}, wantField: "date.max_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubTerminal(t)

			_, err := execute(t, tt.args...)
			require.Error(t, err)

			if tt.wantParse {
				var perr *granularerrors.ParseError
				require.True(t, errors.As(err, &perr), "got %v", err)
				return
			}
			var verr *granularerrors.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestDateCommand_InvalidConfig(t *testing.T) {
	stubTerminal(t)
	cfg := writeFile(t, "bad.yaml", "date:\n  min_yaer: 2000\n")

	_, err := execute(t, "date", "-c", cfg)
	var perr *granularerrors.ParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
}

func TestDateCommand_RequiresTerminal(t *testing.T) {
	stubNoTerminal(t)

	_, err := execute(t, "date")
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal")
}

func TestDateCommand_LogFile(t *testing.T) {
	stubTerminal(t, "o")
	logPath := filepath.Join(t.TempDir(), "granular.log")

	_, err := execute(t, "date", "--initial", "2024-02-10", "--log-file", logPath, "-v")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	logs := string(data)
	require.Contains(t, logs, "opening date picker")
	require.Contains(t, logs, "date confirmed")
	require.Contains(t, logs, "configuration loaded")
	require.Contains(t, logs, "component=command.date")
	require.NotContains(t, logs, `"level"`)
}

func TestDateCommand_LogFileJSON(t *testing.T) {
	stubTerminal(t, "o")
	logPath := filepath.Join(t.TempDir(), "granular.log")

	_, err := execute(t, "date", "--initial", "2024-02-10", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	logs := string(data)
	require.Contains(t, logs, `"component":"command.date"`)
	require.Contains(t, logs, `"message":"date confirmed"`)
	require.NotContains(t, logs, "configuration loaded", "debug entries need --verbose or --log-level debug")
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "datepicker"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"year": 2024, "month": "February"})
	log.Info("month changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "month changed", entry["message"])
	require.Equal(t, "datepicker", entry["component"])
	require.Equal(t, "February", entry["month"])
	require.EqualValues(t, 2024, entry["year"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("command", "date")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "date", entry["command"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.With("k", "v"))
	})
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { Nop().Info("dropped") })
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, HumanReadable: true, Component: "datepicker"})
	require.NoError(t, err)

	log.With("year", 2024).Debug("year chosen")

	out := buf.String()
	require.Contains(t, out, "DBG")
	require.Contains(t, out, "year chosen")
	require.Contains(t, out, "component=datepicker")
	require.Contains(t, out, "year=2024")
	require.False(t, strings.HasPrefix(out, "{"))
}

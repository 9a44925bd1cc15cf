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
	log, err := New(Options{Level: "info", Writer: buf, Component: "pipeline"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"sprite": 2, "config": "ships"})
	log.Info("sprite generated")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "sprite generated", entry["message"])
	require.Equal(t, "ships", entry["config"])
	require.Equal(t, float64(2), entry["sprite"])
	require.Equal(t, "pipeline", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	zl := log.Zerolog()
	zl.Debug().Msg("nor this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"step": "padding#1"})
	log.Error(errors.New("boom"), "step failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "step failed", entry["message"])
	require.Equal(t, "padding#1", entry["step"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("palette contains only blanks")
	require.Contains(t, buf.String(), "palette contains only blanks")
	require.Contains(t, buf.String(), "WRN")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("ignored")
	log.Error(errors.New("ignored"), "ignored")
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	zl := log.Zerolog()
	zl.Info().Msg("ignored")

	Nop().Warn("ignored")
}

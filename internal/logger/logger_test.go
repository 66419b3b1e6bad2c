package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"route": "/features", "locale": "zh"})
	log.Info("route changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "route changed", entry["message"])
	require.Equal(t, "/features", entry["route"])
	require.Equal(t, "zh", entry["locale"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.With("form", "contact")
	log.Error(errors.New("boom"), "submission failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "submission failed", entry["message"])
	require.Equal(t, "contact", entry["form"])
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
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "site.log")
	log, closer, err := OpenFile(path, "info")
	require.NoError(t, err)
	log.Info("first")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"first"`)
}

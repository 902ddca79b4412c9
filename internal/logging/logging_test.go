package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.Info().Str("visitor", "abc").Msg("session created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "session created", entry["message"])
	require.Equal(t, "abc", entry["visitor"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestLevelFilters(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

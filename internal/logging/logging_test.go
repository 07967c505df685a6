package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/roman/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"INFO", logging.LevelInfo},
		{"warn", logging.LevelWarn},
		{"warning", logging.LevelWarn},
		{"error", logging.LevelError},
	}
	for _, tc := range tests {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestParseFormat(t *testing.T) {
	got, err := logging.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatText, got)

	got, err = logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, got)

	_, err = logging.ParseFormat("xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

// TestNew_JSON checks level filtering and the RFC3339 timestamp.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelInfo, logging.FormatJSON)

	logger.Debug("hidden")
	logger.Info("converted", "value", 1990, "numeral", "MCMXC")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug record must be filtered")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "converted", rec["msg"])
	assert.Equal(t, "MCMXC", rec["numeral"])

	ts, ok := rec["time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, "time must be RFC3339")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelDebug, logging.FormatText)

	logger.Debug("encoder ready", "notation", "additive")
	assert.Contains(t, buf.String(), "notation=additive")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, id := logging.WithRunID(logging.New(&buf, logging.LevelInfo, logging.FormatJSON))

	_, err := uuid.Parse(id)
	require.NoError(t, err, "run id must be a UUID")

	logger.Info("start")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, id, rec[logging.RunIDKey])
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	assert.NotPanics(t, func() { logger.Error("dropped") })
}

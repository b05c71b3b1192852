package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamebox/internal/errutil"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("gamebox", "1.2.3", "json", slog.LevelInfo, &buf)

	logger.Info("state switched", "to", "Menu")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "state switched", rec["msg"])
	assert.Equal(t, "gamebox", rec["service"])
	assert.Equal(t, "1.2.3", rec["version"])
	assert.Equal(t, "Menu", rec["to"])
}

func TestSetup_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("gamebox", "dev", "text", slog.LevelWarn, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "service=gamebox")
}

func TestSetup_WithAttrsKeepsTags(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("gamebox", "dev", "text", slog.LevelDebug, &buf).
		With("component", "dispatch").
		WithGroup("ev")

	logger.Debug("dispatched", "category", "update")

	out := buf.String()
	assert.Contains(t, out, "component=dispatch")
	assert.Contains(t, out, "ev.category=update")
	assert.Contains(t, out, "version=dev")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	errutil.AssertErrorCode(t, err, "INVALID_LOG_LEVEL")
}

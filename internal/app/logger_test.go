package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inkblot-backend/internal/config"
	"github.com/heartmarshall/inkblot-backend/pkg/ctxutil"
)

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"}).Info("summary computed", slog.Int("responses", 24))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "summary computed", entry["msg"])
	assert.Equal(t, "inkblot", entry["app"])
	assert.EqualValues(t, 24, entry["responses"])
	assert.NotContains(t, entry, "source")
}

func TestNewLogger_RequestIDFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	newLogger(&buf, config.LogConfig{Level: "info", Format: "json"}).InfoContext(ctx, "subject created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "req-42", entry["request_id"])
}

func TestNewLogger_TextAddsSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "debug", Format: "text"}).Debug("rescore started")

	out := buf.String()
	assert.Contains(t, out, "rescore started")
	assert.Contains(t, out, "source=")
	assert.Contains(t, out, "app=inkblot")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})
	logger.Info("dropped")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "error", Format: "json"})
	assert.Same(t, logger, slog.Default())
}

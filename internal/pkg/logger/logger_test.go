package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/resell-phones/internal/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestNewLogger_ContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "debug", Format: "json", Output: &buf, ServiceName: "resell-phones"})

	ctx := logger.WithContextValue(context.Background(), logger.ContextKeyRequestID, "req-123")
	ctx = logger.WithContextValue(ctx, logger.ContextKeyPath, "/api/phones")

	log.InfoContext(ctx, "listed phones", slog.Int("count", 7))

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "req-123", records[0]["request_id"])
	assert.Equal(t, "/api/phones", records[0]["path"])
	assert.Equal(t, "resell-phones", records[0]["app"])
	assert.Equal(t, "INFO", records[0]["severity"])
	assert.Equal(t, float64(7), records[0]["count"])
	assert.Equal(t, "req-123", logger.RequestID(ctx))
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "debug", Format: "json", Output: &buf})

	log.With(slog.String("api_key", "abc")).Info("login attempt password=hunter2",
		slog.String("username", "admin"),
		slog.String("password", "password123"),
		slog.String("body", `{"token": "mock_token_123"}`),
		slog.Group("request", slog.String("authorization", "Bearer xyz")))

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "password123")
	assert.NotContains(t, out, "mock_token_123")
	assert.NotContains(t, out, "xyz")
	assert.NotContains(t, out, `"abc"`)
	assert.Contains(t, out, "admin")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "warn", Format: "text", Output: &buf})

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "pretty", Output: &buf, Environment: "test"})

	log.Info("server started", slog.String("addr", ":8080"))

	out := buf.String()
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "addr=:8080")
	assert.Contains(t, out, "env=test")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, logger.ParseLevel(tt.input))
		})
	}
}

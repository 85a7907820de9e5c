package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestNewDefaultsToJSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "production"})

	log.Info("startup", "port", 8080)

	out := buf.String()
	assert.Contains(t, out, `"msg":"startup"`)
	assert.Contains(t, out, `"port":8080`)
}

func TestNewDefaultsToPrettyInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "development"})

	log.Info("ready")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "ready")
	assert.NotContains(t, out, `"msg"`)
}

func TestPrettyHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: formatPretty, Level: slog.LevelWarn})

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestPrettyHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: formatPretty})

	log.Info("request done", "status", 200, "path", "/api/bundle")

	out := buf.String()
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "path=/api/bundle")
}

func TestWithErrorAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: formatPretty})

	log.WithComponent("interpreter").WithError(assert.AnError).Warn("falling back")

	out := buf.String()
	require.Contains(t, out, "component=interpreter")
	assert.Contains(t, out, "error=")
	assert.Contains(t, out, "falling back")
}

func TestPrettyHandlerWithAttrsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	child := h.WithAttrs([]slog.Attr{slog.String("a", "1")})

	log := slog.New(h)
	log.Info("plain")

	require.NotNil(t, child)
	assert.False(t, strings.Contains(buf.String(), "a=1"))
}

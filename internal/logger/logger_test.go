package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"comment-service/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithArticleID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := logger.ContextWithRequestID(context.Background(), "req-456")
	logger.WithArticleID(ctx, "42").Warn("article check inconclusive")

	output := buf.String()
	assert.Contains(t, output, "article check inconclusive")
	assert.Contains(t, output, `"article_id":"42"`)
	assert.Contains(t, output, `"request_id":"req-456"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestSetup_WritesToRotatingFile(t *testing.T) {
	original := logger.Current()
	defer logger.SetLogger(original)

	path := filepath.Join(t.TempDir(), "comment-service.log")
	closer := logger.Setup(logger.Options{
		Level:      "warn",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})

	logger.Info("dropped below level")
	logger.Warn("kept at level", slog.String("article_id", "7"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	output := string(data)
	assert.Contains(t, output, "kept at level")
	assert.Contains(t, output, `"service":"comment-service"`)
	assert.NotContains(t, output, "dropped below level")
}

func TestSetup_StdoutOnly(t *testing.T) {
	original := logger.Current()
	defer logger.SetLogger(original)

	closer := logger.Setup(logger.Options{Level: "debug"})
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
	assert.True(t, logger.Current().Enabled(context.Background(), slog.LevelDebug))
}

func TestLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	testLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.SetLogger(testLogger)

	t.Run("tags records with request id", func(t *testing.T) {
		buf.Reset()
		ctx := logger.ContextWithRequestID(context.Background(), "req-789")
		assert.Equal(t, "req-789", logger.RequestIDFromContext(ctx))

		logger.FromContext(ctx).Info("tagged")
		assert.Contains(t, buf.String(), `"request_id":"req-789"`)
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		buf.Reset()
		assert.Empty(t, logger.RequestIDFromContext(context.Background()))
		assert.Same(t, testLogger, logger.FromContext(context.Background()))
	})
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(context.Background()))
	assert.Equal(t, stored, FromContext(WithContext(context.Background(), stored)))
}

func TestFromContextOr(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, fallback, FromContextOr(nil, fallback)) //nolint:staticcheck // nil guard
	assert.Equal(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Equal(t, stored, FromContextOr(WithContext(context.Background(), stored), fallback))
}

func TestWithIDs_EnrichRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), jsonLogger(&buf))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).Info("quote added",
		slog.String("category", "wisdom"),
		slog.String("password", "super-secret"),
	)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
	assert.Equal(t, "wisdom", entry["category"])
	assert.NotContains(t, buf.String(), "super-secret")
}

func TestWithRequestID_WithoutStoredLogger(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	assert.NotEqual(t, defaultLogger, FromContext(ctx))
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	originalSlog := slog.Default()
	t.Cleanup(func() {
		defaultLogger = original
		slog.SetDefault(originalSlog)
	})

	var buf bytes.Buffer
	logger := jsonLogger(&buf)
	SetDefault(logger)

	FromContext(context.Background()).Info("via package default")
	slog.Info("via slog default")

	assert.Contains(t, buf.String(), "via package default")
	assert.Contains(t, buf.String(), "via slog default")
}

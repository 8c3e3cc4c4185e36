package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestTraceHandler_InjectsSpanContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "roll")
	defer span.End()

	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetFormat("json").Build()
	require.NoError(t, err)

	logger.Info(ctx, "rolled")
	line := decodeLine(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), line[KeyTraceID])
	assert.Equal(t, span.SpanContext().SpanID().String(), line[KeySpanID])
}

func TestTraceHandler_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetFormat("json").Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "plain")
	line := decodeLine(t, &buf)
	assert.NotContains(t, line, KeyTraceID)
	assert.NotContains(t, line, KeySpanID)
}

func TestTraceHandler_Disabled(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "roll")
	defer span.End()

	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetFormat("json").SetTrace(false).Build()
	require.NoError(t, err)

	logger.Info(ctx, "plain")
	assert.NotContains(t, decodeLine(t, &buf), KeyTraceID)
}

func TestNewTraceHandler(t *testing.T) {
	_, err := NewTraceHandler(nil)
	assert.ErrorIs(t, err, ErrNilHandler)

	var buf bytes.Buffer
	h, err := NewTraceHandler(slog.NewJSONHandler(&buf, nil))
	require.NoError(t, err)

	slog.New(h).With("a", 1).WithGroup("g").Info("msg", "b", 2)
	assert.Contains(t, buf.String(), `"a":1`)
	assert.Contains(t, buf.String(), `"g":{"b":2}`)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

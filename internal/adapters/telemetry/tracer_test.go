package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/recent/internal/adapters/telemetry"
	"go.trai.ch/recent/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_Start_WithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "recent.add", ports.WithAttribute("path", "/data/a.tif"))
	span.SetAttribute("count", 3)
	span.SetAttribute("all", true)
	span.SetAttribute("paths", []string{"a", "b"})
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("size", int64(7))
	span.SetAttribute("other", struct{ X int }{1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "recent.add", ended[0].Name())

	got := attrs(ended[0])
	assert.Equal(t, "/data/a.tif", got["path"].AsString())
	assert.Equal(t, int64(3), got["count"].AsInt64())
	assert.True(t, got["all"].AsBool())
	assert.Equal(t, []string{"a", "b"}, got["paths"].AsStringSlice())
	assert.InDelta(t, 0.5, got["ratio"].AsFloat64(), 0)
	assert.Equal(t, int64(7), got["size"].AsInt64())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "recent.clear")
	span.RecordError(nil)
	span.RecordError(errors.New("disk full"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "disk full", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, parent := tracer.Start(t.Context(), "recent.watch")
	_, child := tracer.Start(ctx, "recent.saved")
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

package logger

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtxAddsUserAndTraceFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Log
	Log = zap.New(core)
	defer func() { Log = prev }()

	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{1}})
	ctx := trace.ContextWithSpanContext(WithUser(context.Background(), 42), sc)

	Ctx(ctx).Info("hello")
	Ctx(context.Background()).Info("anonymous")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries: got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["user_id"] != uint64(42) {
		t.Fatalf("user_id: got=%v", fields["user_id"])
	}
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("trace_id: got=%v", fields["trace_id"])
	}
	if len(entries[1].Context) != 0 {
		t.Fatalf("plain context should add no fields, got %v", entries[1].ContextMap())
	}
}

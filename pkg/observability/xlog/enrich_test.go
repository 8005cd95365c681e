package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xmagic/pkg/observability/xlog"
)

// spanContext 构造一个有效的、已采样的 span context
func spanContext(t *testing.T) (context.Context, trace.SpanContext) {
	t.Helper()
	tid, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	if err != nil {
		t.Fatalf("TraceIDFromHex() error: %v", err)
	}
	sid, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	if err != nil {
		t.Fatalf("SpanIDFromHex() error: %v", err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     sid,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc), sc
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json: %v\noutput: %s", err, buf.String())
	}
	return rec
}

func TestNewEnrichHandler_Nil(t *testing.T) {
	if _, err := xlog.NewEnrichHandler(nil); !errors.Is(err, xlog.ErrNilHandler) {
		t.Errorf("NewEnrichHandler(nil) error = %v, want %v", err, xlog.ErrNilHandler)
	}
}

func TestEnrich_OTelKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetFormat("json").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx, sc := spanContext(t)
	logger.Info(ctx, "traced")

	rec := decode(t, &buf)
	if rec[xlog.KeyTraceID] != sc.TraceID().String() {
		t.Errorf("trace_id = %v, want %s", rec[xlog.KeyTraceID], sc.TraceID())
	}
	if rec[xlog.KeySpanID] != sc.SpanID().String() {
		t.Errorf("span_id = %v, want %s", rec[xlog.KeySpanID], sc.SpanID())
	}
	if rec[xlog.KeyTraceSampled] != true {
		t.Errorf("trace_sampled = %v, want true", rec[xlog.KeyTraceSampled])
	}
}

func TestEnrich_CloudKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat("json").
		SetCloudTrace("my-project").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx, sc := spanContext(t)
	logger.Info(ctx, "traced")

	rec := decode(t, &buf)
	want := "projects/my-project/traces/" + sc.TraceID().String()
	if rec[xlog.KeyCloudTrace] != want {
		t.Errorf("%s = %v, want %s", xlog.KeyCloudTrace, rec[xlog.KeyCloudTrace], want)
	}
	if _, ok := rec[xlog.KeyTraceID]; ok {
		t.Error("otel trace_id key should not be present in cloud mode")
	}
}

func TestEnrich_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetFormat("json").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "untraced")

	rec := decode(t, &buf)
	if _, ok := rec[xlog.KeyTraceID]; ok {
		t.Errorf("trace_id should be absent without a span: %v", rec)
	}
}

func TestEnrich_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetFormat("json").SetEnrich(false).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	testCleanup(t, cleanup)

	ctx, _ := spanContext(t)
	logger.Info(ctx, "traced")

	rec := decode(t, &buf)
	if _, ok := rec[xlog.KeyTraceID]; ok {
		t.Errorf("trace_id should be absent when enrich is disabled: %v", rec)
	}
}

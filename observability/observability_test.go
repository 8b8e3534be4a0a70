package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func newRecordingTracer(t *testing.T) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return Tracer(tp), exporter
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestCallSpan_Success(t *testing.T) {
	tracer, exporter := newRecordingTracer(t)

	ctx, span := StartCallSpan(context.Background(), tracer, "GET", "payments/1")
	SetSpanAttributes(ctx, attribute.String(AttrRequestID, "req-1"))
	EndCallSpan(span, 0, "", nil)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name != SpanRESTCall || s.SpanKind != trace.SpanKindClient {
		t.Errorf("unexpected span %s kind %v", s.Name, s.SpanKind)
	}
	if s.Status.Code != codes.Ok {
		t.Errorf("expected Ok status, got %v", s.Status)
	}
	if v, ok := attrValue(s.Attributes, AttrHTTPMethod); !ok || v.AsString() != "GET" {
		t.Errorf("missing method attribute: %v", s.Attributes)
	}
	if v, ok := attrValue(s.Attributes, AttrRequestID); !ok || v.AsString() != "req-1" {
		t.Errorf("missing request id attribute: %v", s.Attributes)
	}
	if s.InstrumentationScope.Name != InstrumentationName {
		t.Errorf("unexpected scope %q", s.InstrumentationScope.Name)
	}
}

func TestCallSpan_Failure(t *testing.T) {
	tracer, exporter := newRecordingTracer(t)

	_, span := StartCallSpan(context.Background(), tracer, "POST", "payments")
	EndCallSpan(span, 500, "HTTP_STATUS", errors.New("server error"))

	s := exporter.GetSpans()[0]
	if s.Status.Code != codes.Error || s.Status.Description != "server error" {
		t.Errorf("unexpected status %v", s.Status)
	}
	if v, ok := attrValue(s.Attributes, AttrStatusCode); !ok || v.AsInt64() != 500 {
		t.Errorf("missing status attribute: %v", s.Attributes)
	}
	if v, ok := attrValue(s.Attributes, AttrErrorType); !ok || v.AsString() != "HTTP_STATUS" {
		t.Errorf("missing error type attribute: %v", s.Attributes)
	}
	if len(s.Events) != 1 || s.Events[0].Name != "exception" {
		t.Errorf("expected recorded error event, got %v", s.Events)
	}
}

func TestSetSpanAttributesNoSpan(t *testing.T) {
	// Should not panic with background context
	SetSpanAttributes(context.Background(), attribute.String("key", "value"))
}

func TestTracerDefaultsToGlobal(t *testing.T) {
	if Tracer(nil) == nil {
		t.Fatal("expected non-nil tracer")
	}
}

func TestNewCallMetrics_Noop(t *testing.T) {
	metrics, err := NewCallMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "GET", "ok", 100*time.Millisecond)
}

func TestCallMetrics_Nil(t *testing.T) {
	var metrics *CallMetrics
	metrics.RecordStart(context.Background())
	metrics.RecordEnd(context.Background(), "GET", "ok", time.Millisecond)
}

func TestCallMetrics_Recorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewCallMetrics(mp.Meter(InstrumentationName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "GET", "ok", 20*time.Millisecond)
	metrics.RecordStart(ctx)
	metrics.RecordEnd(ctx, "GET", "CONNECTION", 5*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}

	found := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = m
		}
	}

	calls, ok := found[MetricCalls].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("missing %s: %v", MetricCalls, found)
	}
	var total int64
	for _, dp := range calls.DataPoints {
		total += dp.Value
	}
	if total != 2 || len(calls.DataPoints) != 2 {
		t.Errorf("expected 2 calls over 2 outcomes, got %d over %d", total, len(calls.DataPoints))
	}

	active, ok := found[MetricCallsActive].Data.(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 0 {
		t.Errorf("expected no calls in flight, got %+v", found[MetricCallsActive].Data)
	}

	hist, ok := found[MetricCallDuration].Data.(metricdata.Histogram[float64])
	if !ok || len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 2 {
		t.Errorf("expected 2 duration samples, got %+v", found[MetricCallDuration].Data)
	}
}

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		insecure   bool
	}{
		{"always sample", 1.0, true},
		{"never sample", 0.0, true},
		{"ratio based", 0.5, true},
		{"secure", 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTracerConfig("test")
			cfg.SampleRate = tc.sampleRate
			cfg.Insecure = tc.insecure

			tp, err := InitTracer(context.Background(), cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = tp.Shutdown(context.Background())
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		insecure bool
	}{
		{"insecure", 15 * time.Second, true},
		{"secure default interval", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMeterConfig("test")
			cfg.Interval = tc.interval
			cfg.Insecure = tc.insecure

			mp, err := InitMeter(context.Background(), cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = mp.Shutdown(ctx)
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("svc", "1.2.3", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := res.Set().Value("service.name")
	if !ok || v.AsString() != "svc" {
		t.Errorf("expected service.name svc, got %v", v)
	}
}

// Package observability provides OpenTelemetry tracing and metrics for REST
// calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("payments-client"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("payments-client"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewCallMetrics(observability.Meter(observability.InstrumentationName))
//
// Both are optional; without them spans and instruments go to the no-op
// providers installed by default.
package observability

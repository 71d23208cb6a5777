// Package observability provides OpenTelemetry tracing and metrics for
// provider calls and emitted events.
//
// Spans and instruments are created from the global OpenTelemetry
// providers unless a caller supplies its own, so a test can install an
// SDK tracer provider with a span recorder and a meter provider with a
// manual reader and assert on what a MockProvider did.
//
// Tracing:
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanRequest)
//	defer span.End()
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter("walletmock"))
//	metrics.RecordEvent(ctx, "chainChanged")
package observability

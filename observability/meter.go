package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the OpenTelemetry instruments a provider records into.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requestTotal    metric.Int64Counter
	eventTotal      metric.Int64Counter
	deprecatedTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	requestTotal, err := meter.Int64Counter("provider.requests",
		metric.WithDescription("Total number of provider requests by method and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider.requests counter: %w", err)
	}

	eventTotal, err := meter.Int64Counter("provider.events",
		metric.WithDescription("Total number of emitted provider events"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider.events counter: %w", err)
	}

	deprecatedTotal, err := meter.Int64Counter("provider.deprecated",
		metric.WithDescription("Total number of calls to deprecated provider surfaces"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating provider.deprecated counter: %w", err)
	}

	return &Metrics{
		requestTotal:    requestTotal,
		eventTotal:      eventTotal,
		deprecatedTotal: deprecatedTotal,
	}, nil
}

// RecordRequest records a completed request.
func (m *Metrics) RecordRequest(ctx context.Context, method, status string) {
	if m == nil {
		return
	}
	m.requestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrStatus, status),
	))
}

// RecordEvent records one emitted event.
func (m *Metrics) RecordEvent(ctx context.Context, event string) {
	if m == nil {
		return
	}
	m.eventTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrEvent, event),
	))
}

// RecordDeprecated records a call to a deprecated feature.
func (m *Metrics) RecordDeprecated(ctx context.Context, feature string) {
	if m == nil {
		return
	}
	m.deprecatedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrFeature, feature),
	))
}

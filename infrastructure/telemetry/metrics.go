// Package telemetry provides OpenTelemetry metrics for chart rendering.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricRenderCalls    = "graphs.render.calls"
	MetricRenderDuration = "graphs.render.duration"
	MetricRenderPoints   = "graphs.render.points"
	MetricOpenFailures   = "graphs.open.failures"
	MetricErrors         = "graphs.errors"
)

// MetricsProvider records render metrics through the global meter provider.
type MetricsProvider struct {
	meter metric.Meter

	renderCalls  metric.Int64Counter
	openFailures metric.Int64Counter
	errors       metric.Int64Counter

	renderDuration metric.Float64Histogram
	renderPoints   metric.Int64Histogram

	initErr error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter (default: "github.com/felixgeelhaar/graphs").
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
	// Attributes are attached to every measurement.
	Attributes []attribute.KeyValue
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/felixgeelhaar/graphs",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider. Instrument creation
// errors are available from Error; recording on a failed provider is a no-op.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config.MeterName = DefaultMetricsConfig().MeterName
	}

	mp := &MetricsProvider{
		meter: otel.GetMeterProvider().Meter(
			config.MeterName,
			metric.WithInstrumentationVersion(config.MeterVersion),
			metric.WithInstrumentationAttributes(config.Attributes...),
		),
	}
	mp.initErr = mp.initInstruments()
	return mp
}

func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.renderCalls, err = mp.meter.Int64Counter(
		MetricRenderCalls,
		metric.WithDescription("Number of chart function calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return err
	}

	mp.openFailures, err = mp.meter.Int64Counter(
		MetricOpenFailures,
		metric.WithDescription("Number of times the OS opener failed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return err
	}

	mp.errors, err = mp.meter.Int64Counter(
		MetricErrors,
		metric.WithDescription("Number of failed chart calls by cause"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	mp.renderDuration, err = mp.meter.Float64Histogram(
		MetricRenderDuration,
		metric.WithDescription("Time from parse to persisted document"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	mp.renderPoints, err = mp.meter.Int64Histogram(
		MetricRenderPoints,
		metric.WithDescription("Number of parsed data points per chart"),
		metric.WithUnit("{point}"),
	)
	return err
}

// Error returns any error from instrument creation.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

// RecordRender records one chart call.
func (mp *MetricsProvider) RecordRender(ctx context.Context, kind string, success bool, duration time.Duration, points int) {
	if mp.initErr != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	)
	mp.renderCalls.Add(ctx, 1, attrs)
	mp.renderDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if success {
		mp.renderPoints.Record(ctx, int64(points), metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordOpenFailure records a failed attempt to open a document.
func (mp *MetricsProvider) RecordOpenFailure(ctx context.Context, kind string) {
	if mp.initErr != nil {
		return
	}
	mp.openFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordError records a failed chart call by cause.
func (mp *MetricsProvider) RecordError(ctx context.Context, kind, errorType string) {
	if mp.initErr != nil {
		return
	}
	mp.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("error_type", errorType),
	))
}

// NoopMetricsProvider is a no-op metrics provider for testing or when metrics are disabled.
type NoopMetricsProvider struct{}

// RecordRender is a no-op.
func (NoopMetricsProvider) RecordRender(context.Context, string, bool, time.Duration, int) {}

// RecordOpenFailure is a no-op.
func (NoopMetricsProvider) RecordOpenFailure(context.Context, string) {}

// RecordError is a no-op.
func (NoopMetricsProvider) RecordError(context.Context, string, string) {}

// Metrics defines the interface for metrics recording.
type Metrics interface {
	RecordRender(ctx context.Context, kind string, success bool, duration time.Duration, points int)
	RecordOpenFailure(ctx context.Context, kind string)
	RecordError(ctx context.Context, kind, errorType string)
}

var (
	_ Metrics = (*MetricsProvider)(nil)
	_ Metrics = NoopMetricsProvider{}
)

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics counts generations and records where they degraded.
// A nil *PipelineMetrics is valid and records nothing.
type PipelineMetrics struct {
	generated      metric.Int64Counter
	fallbacks      metric.Int64Counter
	renderDuration metric.Float64Histogram
	historyErrors  metric.Int64Counter
}

// NewPipelineMetrics creates the pipeline instruments on the global meter.
func NewPipelineMetrics() (*PipelineMetrics, error) {
	meter := otel.Meter(instrumentationName)

	generated, err := meter.Int64Counter(
		"quotes_generated_total",
		metric.WithDescription("Styled quotes produced, by theme and quote source"),
	)
	if err != nil {
		return nil, err
	}

	fallbacks, err := meter.Int64Counter(
		"quote_fallback_total",
		metric.WithDescription("Pipeline stages that degraded to a fallback"),
	)
	if err != nil {
		return nil, err
	}

	renderDuration, err := meter.Float64Histogram(
		"render_duration_seconds",
		metric.WithDescription("Image composition and encoding time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	historyErrors, err := meter.Int64Counter(
		"history_write_errors_total",
		metric.WithDescription("History appends that failed"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		generated:      generated,
		fallbacks:      fallbacks,
		renderDuration: renderDuration,
		historyErrors:  historyErrors,
	}, nil
}

// Generated records one produced quote.
func (m *PipelineMetrics) Generated(ctx context.Context, theme, source string) {
	if m == nil {
		return
	}

	m.generated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("theme", theme),
		attribute.String("source", source),
	))
}

// Fallback records a degraded stage; reason names it (quote, weather, translation).
func (m *PipelineMetrics) Fallback(ctx context.Context, reason string) {
	if m == nil {
		return
	}

	m.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// Rendered records an image render.
func (m *PipelineMetrics) Rendered(ctx context.Context, format, preset string, d time.Duration) {
	if m == nil {
		return
	}

	m.renderDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("format", format),
		attribute.String("preset", preset),
	))
}

// HistoryError records a failed history append.
func (m *PipelineMetrics) HistoryError(ctx context.Context) {
	if m == nil {
		return
	}

	m.historyErrors.Add(ctx, 1)
}

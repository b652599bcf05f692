// Package metrics holds the engine's OpenTelemetry instruments. Without a
// configured meter provider the otel global falls back to no-op instruments,
// so callers can record unconditionally.
package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Registry holds all engine metrics.
type Registry struct {
	meter metric.Meter

	InteractionsProcessed   metric.Int64Counter
	PatternsMatched         metric.Int64Counter
	FallbackClassifications metric.Int64Counter
	UnrecognizedTypes       metric.Int64Counter
	SeverityNormalized      metric.Float64Histogram
	AnalysisDuration        metric.Float64Histogram
}

// NewRegistry creates the engine metrics registry on the named meter.
func NewRegistry(meterName string) (*Registry, error) {
	r := &Registry{meter: otel.Meter(meterName)}

	var err error

	r.InteractionsProcessed, err = r.meter.Int64Counter(
		"bazi.engine.interactions_processed_total",
		metric.WithDescription("Total interaction entries iterated by the analyzer"),
	)
	if err != nil {
		return nil, err
	}

	r.PatternsMatched, err = r.meter.Int64Counter(
		"bazi.engine.patterns_matched_total",
		metric.WithDescription("Total interactions resolved to an authored pattern"),
	)
	if err != nil {
		return nil, err
	}

	r.FallbackClassifications, err = r.meter.Int64Counter(
		"bazi.engine.fallback_classifications_total",
		metric.WithDescription("Total interactions scored under the generic null pattern"),
	)
	if err != nil {
		return nil, err
	}

	r.UnrecognizedTypes, err = r.meter.Int64Counter(
		"bazi.engine.unrecognized_types_total",
		metric.WithDescription("Total interactions skipped for an unknown type token"),
	)
	if err != nil {
		return nil, err
	}

	r.SeverityNormalized, err = r.meter.Float64Histogram(
		"bazi.engine.severity_normalized",
		metric.WithDescription("Normalized severity score per matched pattern"),
		metric.WithExplicitBucketBoundaries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100),
	)
	if err != nil {
		return nil, err
	}

	r.AnalysisDuration, err = r.meter.Float64Histogram(
		"bazi.engine.analysis_duration",
		metric.WithDescription("Duration of one full analysis in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 50, 100),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for pipeline runs.
var (
	tracer = otel.Tracer("charnet.pipeline")
	meter  = otel.Meter("charnet.pipeline")
)

var (
	runLatency metric.Float64Histogram
	runTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runLatency, err = meter.Float64Histogram(
			"charnet_pipeline_duration_seconds",
			metric.WithDescription("Duration of pipeline runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runTotal, err = meter.Int64Counter(
			"charnet_pipeline_runs_total",
			metric.WithDescription("Total number of pipeline runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func startRunSpan(ctx context.Context, textLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Pipeline.Run",
		trace.WithAttributes(attribute.Int("charnet.text_length", textLen)),
	)
}

func startStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Pipeline."+stage)
}

func setRunSpanResult(span trace.Span, res *Result) {
	span.SetAttributes(
		attribute.Int("charnet.sentences", len(res.Sentences)),
		attribute.Int("charnet.candidates", len(res.Candidates)),
		attribute.Int("charnet.names", res.Vocabulary.Len()),
		attribute.Float64("charnet.align_rate", res.AlignRate),
	)
}

func recordRunMetrics(ctx context.Context, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	runLatency.Record(ctx, duration.Seconds(), attrs)
	runTotal.Add(ctx, 1, attrs)
}

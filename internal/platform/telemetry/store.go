package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	storeMetricsOnce sync.Once
	storeDuration    metric.Float64Histogram
)

func storeHistogram() metric.Float64Histogram {
	storeMetricsOnce.Do(func() {
		h, err := otel.Meter(instrumentationName).Float64Histogram(
			"store.operation.duration",
			metric.WithDescription("Persistence store operation duration in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			otel.Handle(err)
			return
		}

		storeDuration = h
	})

	return storeDuration
}

// StartStoreSpan starts a span named "store.<driver>.<operation>".
// The returned function ends the span, marks it failed when err is non-nil
// and records the operation duration.
func StartStoreSpan(ctx context.Context, driver, operation string, attrs ...attribute.KeyValue) (context.Context, func(err error)) {
	start := time.Now()
	attrs = append(attrs,
		attribute.String("db.system", driver),
		attribute.String("db.operation", operation),
	)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "store."+driver+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()

		if h := storeHistogram(); h != nil {
			h.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("db.system", driver),
				attribute.String("db.operation", operation),
				attribute.Bool("error", err != nil),
			))
		}
	}
}

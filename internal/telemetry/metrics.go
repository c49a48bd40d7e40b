package telemetry

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// WithHttpMetricAttributes returns attributes for HTTP metrics based on the request.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.HTTPRoute(getHttpRoute(r)),
	}
}

// MustInt64Counter creates an Int64Counter on the named meter of the global
// meter provider. It panics when the instrument cannot be created, so it
// is meant to be called from package init functions.
func MustInt64Counter(meterName, counterName, description string) metric.Int64Counter {
	counter, err := otel.Meter(meterName).Int64Counter(
		counterName,
		metric.WithDescription(description),
	)
	if err != nil {
		panic(err)
	}
	return counter
}

// MustFloat64Histogram creates a Float64Histogram on the named meter of the
// global meter provider. It panics when the instrument cannot be created.
func MustFloat64Histogram(meterName, histogramName, description, unit string) metric.Float64Histogram {
	histogram, err := otel.Meter(meterName).Float64Histogram(
		histogramName,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		panic(err)
	}
	return histogram
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(5*time.Second),
		)),
		// Explicit latency buckets for all duration instruments.
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "*duration*"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
					Boundaries: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
				},
			},
		)),
	)
	return meterProvider, exporter, nil
}

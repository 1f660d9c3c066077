package telemetry

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config drives tracing setup. An empty Endpoint disables export.
type Config struct {
	ServiceName string
	Endpoint    string
	Probability float64
}

// Teardown flushes and stops the tracer provider.
type Teardown func(context.Context) error

// InitTracing installs the global tracer provider and propagator.
func InitTracing(ctx context.Context, cfg Config) (trace.TracerProvider, Teardown, error) {
	if cfg.Endpoint == "" {
		log.Printf("[telemetry][tracing] OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating otlp exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler(cfg.Probability)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	log.Printf("[telemetry][tracing] exporting spans endpoint=%s service=%s", cfg.Endpoint, cfg.ServiceName)

	return tp, tp.Shutdown, nil
}

// sampler drops root spans at probability <= 0 and keeps them all at >= 1.
func sampler(probability float64) sdktrace.Sampler {
	switch {
	case probability <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	case probability >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(probability))
}

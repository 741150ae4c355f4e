package otel

import (
	"context"

	"hotel/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	TracerProvider oteltrace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New builds the tracer. Without an endpoint spans go to a no-op provider.
// The returned cleanup flushes pending spans.
func New(config *config.Config) (Otel, func()) {
	endpoint := config.External.Otel.Endpoint
	if endpoint == "" {
		return &otelImpl{TracerProvider: noop.NewTracerProvider()}, func() {}
	}

	ctx := context.Background()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create OTLP exporter, tracing disabled")

		return &otelImpl{TracerProvider: noop.NewTracerProvider()}, func() {}
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.App.Name),
		)),
	)

	otel.SetTracerProvider(traceProvider)

	cleanup := func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shut down tracer provider")
		}
	}

	return &otelImpl{TracerProvider: traceProvider}, cleanup
}

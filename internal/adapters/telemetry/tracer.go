// Package telemetry provides the OpenTelemetry tracing adapter.
package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/conspect/conspect/internal/core/ports"
)

// instrumentationName identifies conspect spans in exported trace data.
const instrumentationName = "github.com/conspect/conspect"

// OTelTracer implements ports.Tracer using an OpenTelemetry SDK provider
// with a span processor that reports span timings to the logger.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOTelTracer creates a tracer whose span timings are logged through lg.
func NewOTelTracer(lg ports.Logger) *OTelTracer {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(lg)),
	)

	return &OTelTracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// Shutdown flushes pending span data and stops the provider.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

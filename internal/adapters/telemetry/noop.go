package telemetry

import (
	"context"

	"github.com/conspect/conspect/internal/core/ports"
)

// NoOpTracer implements ports.Tracer without recording anything. It is the
// default; the log bridge is only wired when tracing is requested.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that records nothing.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

// Shutdown does nothing.
func (t *NoOpTracer) Shutdown(_ context.Context) error {
	return nil
}

type noOpSpan struct{}

func (noOpSpan) End()                        {}
func (noOpSpan) RecordError(_ error)         {}
func (noOpSpan) SetAttribute(_ string, _ any) {}

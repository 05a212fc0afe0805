package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/conspect/conspect/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor and reports span completions
// to the logger. It keeps trace output visible without an external
// collector; conspect runs are short-lived CLI invocations.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd reports the span name and duration when the span completes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	duration := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("%s failed after %s: %s", s.Name(), duration, s.Status().Description))
		return
	}

	b.logger.Info(fmt.Sprintf("%s completed in %s", s.Name(), duration))
}

// ForceFlush does nothing; spans are reported synchronously on end.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

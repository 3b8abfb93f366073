package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/breeze/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge is a span processor that reports finished spans as debug log lines.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge creates a bridge writing to logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd implements sdktrace.SpanProcessor.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	if s.Status().Code == codes.Error {
		b.logger.Debug(fmt.Sprintf("span %s failed after %s: %s", s.Name(), elapsed, s.Status().Description))
		return
	}
	b.logger.Debug(fmt.Sprintf("span %s took %s", s.Name(), elapsed))
}

// ForceFlush implements sdktrace.SpanProcessor.
func (b *LogBridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *LogBridge) Shutdown(context.Context) error {
	return nil
}

package observe

import (
	"context"
	"time"
)

// ResolveFunc resolves the variable described by meta.
type ResolveFunc func(ctx context.Context, meta VarMeta) (string, error)

// Middleware wraps resolution with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Wrap returns a ResolveFunc safe for concurrent use.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
//   - Values: resolved values are returned but never recorded.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware. Nil components are replaced by no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps fn with a span, the resolution instruments and a debug log line.
func (m *Middleware) Wrap(fn ResolveFunc) ResolveFunc {
	return func(ctx context.Context, meta VarMeta) (string, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		value, err := fn(ctx, meta)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordResolution(ctx, meta, duration, err)

		fields := []Field{F("duration_ms", float64(duration.Microseconds())/1000)}
		varLogger := m.logger.WithVariable(meta)
		if err != nil {
			fields = append(fields, F("error", err))
			varLogger.Debug(ctx, "variable resolution failed", fields...)
		} else {
			varLogger.Debug(ctx, "variable resolved", fields...)
		}

		return value, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

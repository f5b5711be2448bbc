package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// VarMeta describes one variable resolution for telemetry. It never holds
// the variable's value.
type VarMeta struct {
	Name       string // name in the inherited environment
	OutputName string // name exported to the child
	Method     string // literal|secret_store|regular|unknown
	Marker     string // load marker, empty for regular values
}

// SpanName returns env.resolve.<method>, or env.resolve without a method.
func (m VarMeta) SpanName() string {
	if m.Method == "" {
		return "env.resolve"
	}
	return "env.resolve." + m.Method
}

func (m VarMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("env.name", m.Name),
		attribute.String("env.output_name", m.OutputName),
	}
	if m.Method != "" {
		attrs = append(attrs, attribute.String("env.method", m.Method))
	}
	if m.Marker != "" {
		attrs = append(attrs, attribute.String("env.marker", m.Marker))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing for resolutions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a span for one resolution.
	StartSpan(ctx context.Context, meta VarMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer wraps an OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	if t == nil {
		return newNoopTracer()
	}
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta VarMeta) (context.Context, trace.Span) {
	attrs := append(meta.attributes(), attribute.Bool("env.error", false))
	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("env.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta VarMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, _ error) {
	span.End()
}

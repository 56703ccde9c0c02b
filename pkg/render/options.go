package render

import (
	"log/slog"

	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer used when none is configured.
const defaultTracerName = "viewspec"

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithDocument sets the document nodes are created in.
func WithDocument(doc *dom.Document) Option {
	return func(r *Renderer) {
		r.doc = doc
	}
}

// WithStack sets the context stack. Renderers sharing a stack must not
// render concurrently.
func WithStack(st *scope.Stack) Option {
	return func(r *Renderer) {
		r.stack = st
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithTracer sets the OpenTelemetry tracer used by RenderContext.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = tracer
	}
}

func defaultTracer() trace.Tracer {
	return otel.Tracer(defaultTracerName)
}

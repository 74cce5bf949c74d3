// Package telemetry wraps folds in OpenTelemetry spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// Default tracer name for treefold folds.
const defaultTracerName = "treefold"

// Config configures fold tracing.
type Config struct {
	// TracerName is the name of the tracer (default: "treefold").
	TracerName string

	// SpanName is the span name (default: "treefold.process").
	SpanName string

	// Attributes are extra attributes set on every span.
	Attributes []attribute.KeyValue

	// Filter decides whether a fold is traced. If nil, all folds are
	// traced.
	Filter func(nodes dom.NodeList) bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures fold tracing.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithSpanName sets the span name.
func WithSpanName(name string) Option {
	return func(c *Config) {
		c.SpanName = name
	}
}

// WithAttributes sets extra span attributes.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *Config) {
		c.Attributes = attrs
	}
}

// WithFilter sets the fold filter.
func WithFilter(filter func(nodes dom.NodeList) bool) Option {
	return func(c *Config) {
		c.Filter = filter
	}
}

// newConfig resolves options into a config with a tracer.
func newConfig(opts ...Option) *Config {
	config := &Config{
		TracerName: defaultTracerName,
		SpanName:   "treefold.process",
	}
	for _, opt := range opts {
		opt(config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return config
}

// Process runs a fold inside a span. The span records the number of
// nodes dispatched by the outer fold and the fold's error status.
func Process[Acc any](ctx context.Context, p dom.Processor[Acc], acc Acc, nodes dom.NodeList, opts ...Option) error {
	config := newConfig(opts...)

	if config.Filter != nil && !config.Filter(nodes) {
		return dom.Process[Acc](p, acc, nodes)
	}

	_, span := config.tracer.Start(ctx, config.SpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(config.Attributes...),
	)
	defer span.End()

	dispatched := 0
	err := dom.Process[Acc](counting[Acc]{inner: p, n: &dispatched}, acc, nodes)
	span.SetAttributes(attribute.Int("treefold.nodes", dispatched))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// counting wraps a processor to count outer-fold dispatches.
type counting[Acc any] struct {
	inner dom.Processor[Acc]
	n     *int
}

// Dispatch implements dom.Processor.
func (c counting[Acc]) Dispatch(acc Acc) dom.ProcessFunc {
	inner := c.inner.Dispatch(acc)
	return func(n dom.Node) error {
		*c.n++
		return inner(n)
	}
}

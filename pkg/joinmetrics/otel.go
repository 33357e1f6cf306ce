package joinmetrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vsel/pkg/selection"
)

// Default tracer name for vsel.
const defaultTracerName = "github.com/vango-dev/vsel"

// Tracing starts spans for join requests.
type Tracing struct {
	tracer trace.Tracer
}

// TracingOption configures Tracing.
type TracingOption func(*tracingConfig)

type tracingConfig struct {
	tracerName string
	provider   trace.TracerProvider
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *tracingConfig) {
		if name != "" {
			c.tracerName = name
		}
	}
}

// WithTracerProvider sets the provider. Default: otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *tracingConfig) {
		c.provider = tp
	}
}

// NewTracing resolves a tracer from the configured provider.
func NewTracing(opts ...TracingOption) *Tracing {
	config := tracingConfig{tracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.provider == nil {
		return &Tracing{tracer: otel.Tracer(config.tracerName)}
	}
	return &Tracing{tracer: config.provider.Tracer(config.tracerName)}
}

// Start starts a server span.
func (t *Tracing) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
}

// Finish records err on span and sets its status. It does not end the span.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// JoinEventName is the span event added for each join.
const JoinEventName = "vsel.join"

// SpanObserver returns an Observer adding a JoinEventName event to the
// span in ctx.
func SpanObserver(ctx context.Context) selection.Observer {
	span := trace.SpanFromContext(ctx)
	return selection.ObserverFunc(func(stats selection.JoinStats) {
		span.AddEvent(JoinEventName, trace.WithAttributes(
			attribute.Int("vsel.groups", stats.Groups),
			attribute.Int("vsel.values", stats.Values),
			attribute.Int("vsel.update", stats.Update),
			attribute.Int("vsel.enter", stats.Enter),
			attribute.Int("vsel.exit", stats.Exit),
		))
	})
}

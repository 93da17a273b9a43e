// Package telemetry records component interactions as OpenTelemetry spans.
// Without an endpoint every call is a no-op.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer used for interaction spans.
const InstrumentationName = "uiforge/ui"

// Config selects the OTLP/HTTP endpoint. Endpoint may be "host:port" (plain
// HTTP) or a full URL.
type Config struct {
	Endpoint    string
	ServiceName string
}

// Recorder starts and ends interaction spans. The nil Recorder is valid and
// records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Recorder exporting to cfg.Endpoint, or a no-op Recorder when
// the endpoint is empty.
func New(ctx context.Context, cfg Config) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return &Recorder{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	opts := []otlptracehttp.Option{}
	if strings.Contains(cfg.Endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "uiforge"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewWithProvider wraps an existing SDK provider.
func NewWithProvider(tp *sdktrace.TracerProvider) *Recorder {
	return &Recorder{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Enabled reports whether spans are exported.
func (r *Recorder) Enabled() bool {
	return r != nil && r.provider != nil
}

// Interaction records a completed user interaction as a zero-duration span.
func (r *Recorder) Interaction(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	if r == nil || r.tracer == nil {
		return
	}
	_, span := r.tracer.Start(ctx, name, oteltrace.WithAttributes(attrs...))
	span.End()
}

// Shutdown flushes pending spans.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("telemetry: shutdown: %w", err)
	}
	return nil
}

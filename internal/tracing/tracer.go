// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/weftworks/provisioning-service/internal/logging"
)

const tracerName = "provisioning-service"

type Tracer struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}

// Shutdown flushes any batched spans. Call it on process exit.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		cfg.Logger.Errorf("failed to create span exporter, tracing disabled: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(
			resource.NewSchemaless(attribute.String("service.name", tracerName)),
		),
	)

	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	t.tracer = t.provider.Tracer(tracerName)
	return t
}

func newExporter(cfg *Config) (sdktrace.SpanExporter, error) {
	switch {
	case cfg.OtelGRPCEndpoint != "":
		return otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
	case cfg.OtelHTTPEndpoint != "":
		return otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
	default:
		return stdouttrace.New()
	}
}

// SPDX-License-Identifier: MIT

// Package tracing builds the OpenTelemetry TracerProvider for the CLI.
// Without an endpoint it is a no-op; with one it batches spans to an OTLP
// collector over gRPC or HTTP.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "mazepath"

const exportTimeout = 10 * time.Second

// ErrUnsupportedProtocol is returned for protocols other than grpc and http.
var ErrUnsupportedProtocol = errors.New("tracing: unsupported OTLP protocol")

// Settings selects the exporter. An empty Endpoint disables tracing.
type Settings struct {
	Endpoint string
	Protocol string // "grpc" (default) or "http"
	Insecure bool
}

// Provider wraps either a no-op or an SDK TracerProvider.
type Provider struct {
	provider trace.TracerProvider
	sdk      *sdktrace.TracerProvider
}

// NewNoop returns a Provider whose tracers discard everything.
func NewNoop() *Provider {
	return &Provider{provider: noop.NewTracerProvider()}
}

// NewWithSDK wraps an existing SDK provider, mainly so tests can attach a
// span recorder.
func NewWithSDK(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp, sdk: tp}
}

// NewProvider builds a Provider from s.
func NewProvider(ctx context.Context, s Settings) (*Provider, error) {
	if strings.TrimSpace(s.Endpoint) == "" {
		return NewNoop(), nil
	}

	exporter, err := newExporter(ctx, s)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(semconv.ServiceNameKey.String(ServiceName)),
		resource.WithProcess(), resource.WithHost(),
	)
	if err != nil {
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	return NewWithSDK(tp), nil
}

func newExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(s.Protocol) {
	case "", "grpc":
		opts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(s.Endpoint),
			otlptracegrpc.WithTimeout(exportTimeout),
		}
		if s.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
		}
		return otlptracegrpc.New(ctx, opts...)

	case "http", "http/protobuf":
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(s.Endpoint),
			otlptracehttp.WithTimeout(exportTimeout),
		}
		if s.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, s.Protocol)
}

// Tracer returns a named tracer.
func (p *Provider) Tracer(name string) trace.Tracer {
	if p == nil || p.provider == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.provider.Tracer(name)
}

// TracerProvider exposes the wrapped provider, e.g. for otel.SetTracerProvider.
func (p *Provider) TracerProvider() trace.TracerProvider {
	if p == nil || p.provider == nil {
		return noop.NewTracerProvider()
	}
	return p.provider
}

// Shutdown flushes buffered spans. It is a no-op for the no-op provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

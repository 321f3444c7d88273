// Package telemetry installs the process-wide OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "closet"

// Config selects where spans go. An empty Endpoint disables export.
type Config struct {
	// Endpoint is either a bare host:port or a URL such as
	// http://collector:4318 (the OTEL_EXPORTER_OTLP_ENDPOINT form).
	Endpoint    string
	ServiceName string
	Insecure    bool // host:port only; a URL's scheme decides
}

// ShutdownFunc flushes and stops the provider.
type ShutdownFunc func(context.Context) error

// Setup installs a batching OTLP/HTTP tracer provider as the global provider.
// With no endpoint it leaves the global no-op provider in place and returns
// a shutdown that does nothing.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts, err := endpointOptions(cfg)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// tracesPath is appended to URL-form endpoints, following the
// OTEL_EXPORTER_OTLP_ENDPOINT convention of naming the collector's base URL.
const tracesPath = "/v1/traces"

// endpointOptions maps cfg.Endpoint onto exporter options. WithEndpoint
// takes host:port only, so URL-form endpoints go through WithEndpointURL,
// which picks TLS from the scheme. WithEndpointURL uses the path verbatim,
// hence the appended tracesPath.
func endpointOptions(cfg Config) ([]otlptracehttp.Option, error) {
	if !strings.Contains(cfg.Endpoint, "://") {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return opts, nil
	}

	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", cfg.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", cfg.Endpoint, u.Scheme)
	}
	if !strings.HasSuffix(u.Path, tracesPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + tracesPath
	}
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

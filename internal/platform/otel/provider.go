// Package otel wires OpenTelemetry tracing for service commands.
package otel

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/volt-agency/site/internal/platform/config"
)

// Environment variables read by LoadConfig.
const (
	EnvEndpoint    = "VOLT_OTEL_ENDPOINT"
	EnvEnabled     = "VOLT_OTEL_ENABLED"
	EnvSampleRatio = "VOLT_OTEL_SAMPLE_RATIO"
)

// Namespace groups every service of the site in trace backends.
const Namespace = "volt"

// Config selects where spans go and how many are kept.
type Config struct {
	Endpoint    string  `env:"VOLT_OTEL_ENDPOINT"`
	Enabled     bool    `env:"VOLT_OTEL_ENABLED"      envDefault:"true"`
	SampleRatio float64 `env:"VOLT_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether spans should be exported.
func (c Config) Active() bool {
	return c.Enabled && strings.TrimSpace(c.Endpoint) != ""
}

// Validate rejects sample ratios outside [0,1].
func (c Config) Validate() error {
	if math.IsNaN(c.SampleRatio) || c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %v", EnvSampleRatio, c.SampleRatio)
	}
	return nil
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Shutdown flushes and stops a tracer provider.
type Shutdown func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global tracer provider for service from the environment.
// Tracing is opt-in: without an endpoint, or with VOLT_OTEL_ENABLED=false, no
// provider is registered and the returned Shutdown does nothing.
func Setup(ctx context.Context, service string) (Shutdown, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return noop, err
	}
	return SetupWithConfig(ctx, service, cfg)
}

// SetupWithConfig is Setup with an explicit Config.
func SetupWithConfig(ctx context.Context, service string, cfg Config) (Shutdown, error) {
	if !cfg.Active() {
		return noop, nil
	}
	if err := cfg.Validate(); err != nil {
		return noop, err
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(service),
		semconv.ServiceNamespace(Namespace),
	))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

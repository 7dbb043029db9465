package otelcoupler

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ib-77/coupler/pkg/coupler/otelcoupler"

// Option configures the instrumentation wrappers.
type Option func(cfg *config)

// WithTracerProvider overrides the global trace.TracerProvider used to
// create the instrumentation tracer.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *config) {
		if tp != nil {
			cfg.tracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global metric.MeterProvider used to
// create the instrumentation meter.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		if mp != nil {
			cfg.meterProvider = mp
		}
	}
}

type config struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func newConfig(options ...Option) config {
	cfg := config{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}

	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

func (cfg config) tracer() trace.Tracer {
	return cfg.tracerProvider.Tracer(instrumentationName)
}

func (cfg config) meter() metric.Meter {
	return cfg.meterProvider.Meter(instrumentationName)
}

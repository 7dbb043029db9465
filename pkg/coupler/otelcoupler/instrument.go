// Package otelcoupler provides OpenTelemetry instrumentation, in the form
// of metrics and traces, for command executions.
package otelcoupler

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/coupler/pkg/coupler"
	"github.com/ib-77/coupler/pkg/coupler/command"
)

// Attribute keys used by the Instrumented command instrumentation.
const (
	ErrorAttribute       attribute.Key = "error"
	CommandNameAttribute attribute.Key = "command.name"
	ExecutionIDAttribute attribute.Key = "execution.id"
)

var _ command.Command[int, int] = &Instrumented[int, int]{}

// Instrumented is a wrapper type over a command.Command instance to
// provide instrumentation, in the form of metrics and traces using
// OpenTelemetry.
//
// Use Instrument for constructing a new instance of this type.
type Instrumented[In, Out any] struct {
	command.Slot[Out]

	name string
	cmd  command.Command[In, Out]

	tracer       trace.Tracer
	mainDuration metric.Int64Histogram
}

func (ic *Instrumented[In, Out]) registerMetrics(meter metric.Meter) error {
	var err error

	if ic.mainDuration, err = meter.Int64Histogram(
		"coupler.command.main.duration.milliseconds",
		metric.WithUnit("ms"),
		metric.WithDescription("Duration in milliseconds of command Main executions performed."),
	); err != nil {
		return fmt.Errorf("otelcoupler.Instrumented: failed to register metric: %w", err)
	}

	return nil
}

// Instrument returns a wrapper command to provide OpenTelemetry
// instrumentation (metrics and traces) around cmd's Main executions.
//
// The wrapper carries its own continuation slot, so pipelines append to
// the wrapper, not to cmd. The name is reported as the command.name
// attribute on spans and metrics.
//
// An error is returned if metrics could not be registered.
func Instrument[In, Out any](name string, cmd command.Command[In, Out], options ...Option) (*Instrumented[In, Out], error) {
	if name == "" {
		return nil, fmt.Errorf("otelcoupler.Instrument: command name is empty")
	}
	if cmd == nil {
		return nil, fmt.Errorf("otelcoupler.Instrument: command is nil")
	}

	cfg := newConfig(options...)

	ic := &Instrumented[In, Out]{
		name:   name,
		cmd:    cmd,
		tracer: cfg.tracer(),
	}

	if err := ic.registerMetrics(cfg.meter()); err != nil {
		return nil, err
	}

	return ic, nil
}

// Main starts a span, delegates to the wrapped command and closes the
// instrumentation when the wrapped completion fires, on whichever
// goroutine that happens.
func (ic *Instrumented[In, Out]) Main(ctx context.Context, in In, done func(res coupler.Result[Out])) {
	attributes := []attribute.KeyValue{
		CommandNameAttribute.String(ic.name),
	}

	spanAttributes := attributes
	if id, ok := command.ExecutionIDFrom(ctx); ok {
		spanAttributes = append(spanAttributes, ExecutionIDAttribute.String(id.String()))
	}

	ctx, span := ic.tracer.Start(ctx, "command.Command.Main", trace.WithAttributes(spanAttributes...))
	start := time.Now()

	ic.cmd.Main(ctx, in, func(res coupler.Result[Out]) {
		err := res.Err()

		duration := time.Since(start)
		ic.mainDuration.Record(ctx, duration.Milliseconds(),
			metric.WithAttributes(append(attributes, ErrorAttribute.Bool(err != nil))...))

		if err != nil {
			span.RecordError(err)
		}

		span.End()
		done(res)
	})
}

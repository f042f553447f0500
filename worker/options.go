// SPDX-License-Identifier: MIT

package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package's tracer.
const instrumentationName = "github.com/katalvlaran/powergeom/worker"

// Options configures Execute and New.
type Options struct {
	tracerProvider trace.TracerProvider
	registerer     prometheus.Registerer
	parallelism    int
	traceSteps     bool
}

// Option customizes Options.
type Option func(*Options)

// WithTracerProvider sets the provider spans are created from. Defaults to
// the global otel provider. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("worker: WithTracerProvider(nil)")
	}

	return func(o *Options) { o.tracerProvider = tp }
}

// WithRegisterer registers the Worker's metrics with reg. Without it the
// metrics are still maintained but not exported. Ignored by Execute.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) { o.registerer = reg }
}

// WithParallelism bounds concurrent cone solves. For a Worker it overrides
// Config.Parallelism. Panics on n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("worker: WithParallelism(n < 1)")
	}

	return func(o *Options) { o.parallelism = n }
}

// WithStepEvents toggles recording of cone steps as span events.
func WithStepEvents(on bool) Option {
	return func(o *Options) { o.traceSteps = on }
}

func gatherOptions(base Options, opts []Option) Options {
	o := base
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.parallelism < 1 {
		o.parallelism = DefaultParallelism
	}

	return o
}

func (o Options) tracer() trace.Tracer {
	return o.tracerProvider.Tracer(instrumentationName)
}

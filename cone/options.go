// SPDX-License-Identifier: MIT

package cone

import "github.com/katalvlaran/powergeom/numeric"

// Step is a snapshot handed to an observer after each inequality has been
// processed. Slices are copies owned by the observer.
type Step struct {
	// Index is the position of the inequality in the system, counting the
	// implicit zero inequality as 0.
	Index int
	// Inequality is the row just processed.
	Inequality numeric.IntVector
	// BasisActive reports which branch ran: basis reduction (true) or
	// pairwise elimination (false).
	BasisActive bool
	// Basis and Fundamental are the sets after the step.
	Basis       []numeric.IntVector
	Fundamental []numeric.IntVector
}

// Options holds the solver configuration.
type Options struct {
	observer func(Step)
	name     string
}

// Option customizes Options.
type Option func(*Options)

// DefaultName labels log lines when WithName is not given.
const DefaultName = "cone"

// WithObserver installs fn to receive a Step after every inequality. It is
// the hook for renderers and tracers. Panics on nil fn.
func WithObserver(fn func(Step)) Option {
	if fn == nil {
		panic("cone: WithObserver(nil)")
	}

	return func(o *Options) { o.observer = fn }
}

// WithName sets the label used in log lines. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("cone: WithName(\"\")")
	}

	return func(o *Options) { o.name = name }
}

func gatherOptions(opts []Option) Options {
	o := Options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

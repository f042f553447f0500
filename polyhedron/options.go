// SPDX-License-Identifier: MIT

package polyhedron

import "github.com/katalvlaran/powergeom/cone"

// DefaultParallelism runs cone solves one at a time.
const DefaultParallelism = 1

// Options configures BuildIncidenceTable and Intersect.
type Options struct {
	solver      cone.Solver
	parallelism int
}

// Option customizes Options.
type Option func(*Options)

// WithSolver replaces the default Motzkin–Burger solver. Panics on nil.
func WithSolver(s cone.Solver) Option {
	if s == nil {
		panic("polyhedron: WithSolver(nil)")
	}

	return func(o *Options) { o.solver = s }
}

// WithParallelism bounds the number of concurrent cone solves. Panics on n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("polyhedron: WithParallelism(n < 1)")
	}

	return func(o *Options) { o.parallelism = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}
	if o.solver == nil {
		o.solver = cone.NewMotzkinBurger(cone.WithName("polyhedron"))
	}

	return o
}

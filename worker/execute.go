// SPDX-License-Identifier: MIT

package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/powergeom/cone"
	"github.com/katalvlaran/powergeom/lattice"
	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/polyhedron"
	"github.com/katalvlaran/powergeom/unimodular"
)

// Execute runs req synchronously and returns its Result.
//
// Errors:
//   - ErrUnknownMode, ErrInvalidRequest for a malformed request.
//   - cone.ErrCancelled (also matching ctx.Err()) when ctx ends mid-run.
//   - any error of the underlying pipeline.
func Execute(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	o := gatherOptions(Options{}, opts)

	return execute(ctx, uuid.New(), req, o)
}

// execute is shared by Execute and Worker; id labels the span and result.
func execute(ctx context.Context, id uuid.UUID, req Request, o Options) (*Result, error) {
	ctx, span := o.tracer().Start(ctx, "powergeom."+req.Mode.String(),
		trace.WithAttributes(
			attribute.String("powergeom.job_id", id.String()),
			attribute.String("powergeom.mode", req.Mode.String()),
			attribute.Int("powergeom.dim", req.dim()),
			attribute.Int("powergeom.parallelism", o.parallelism),
		),
	)
	defer span.End()

	start := time.Now()
	res := &Result{ID: id, Mode: req.Mode}
	err := req.Validate()
	if err == nil {
		err = run(ctx, req, o, span, res)
	}
	res.Elapsed = time.Since(start)

	if err != nil {
		span.RecordError(err)
		if isCancelled(err) {
			span.SetStatus(codes.Error, "cancelled")
		} else {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}
	span.SetStatus(codes.Ok, "")

	return res, nil
}

// run dispatches on the mode and fills res.
func run(ctx context.Context, req Request, o Options, span trace.Span, res *Result) error {
	dim := req.dim()
	solver := newSolver(req.Mode, o, span)

	switch req.Mode {
	case ModePolyhedron:
		table, err := stage(ctx, o, "polyhedron.incidence", func(ctx context.Context) (*polyhedron.IncidenceTable, error) {
			return polyhedron.BuildIncidenceTable(ctx, req.Points, req.CommonLimits, req.Basis,
				polyhedron.WithSolver(solver), polyhedron.WithParallelism(o.parallelism))
		})
		if err != nil {
			return err
		}
		lat, err := stage(ctx, o, "polyhedron.lattice", func(context.Context) (*lattice.Lattice, error) {
			return lattice.Build(table, dim)
		})
		if err != nil {
			return err
		}
		res.Table, res.Lattice = table, lat
		span.SetAttributes(
			attribute.Int("powergeom.normals", table.Len()),
			attribute.IntSlice("powergeom.faces", lat.Count()),
		)

	case ModeIntersection:
		inter, err := polyhedron.Intersect(ctx, req.Polyhedra, dim,
			polyhedron.WithSolver(solver), polyhedron.WithParallelism(o.parallelism))
		if err != nil {
			return err
		}
		res.Intersection = inter
		span.SetAttributes(attribute.Int("powergeom.normals", inter.Len()))

	case ModeCone:
		rays, err := solver.Solve(ctx, req.Inequalities, req.Basis, dim)
		if err != nil {
			return err
		}
		res.Rays = rays
		span.SetAttributes(attribute.Int("powergeom.rays", len(rays)))

	case ModeDeterminant:
		det, err := matrix.Minor(req.Matrix, skipIndex(req.SkipRow), skipIndex(req.SkipCol))
		if err != nil {
			return errors.WithStack(err)
		}
		res.Determinant = &det

	case ModeInverse:
		inv, err := matrix.Inverse(req.Matrix)
		if err != nil {
			return errors.WithStack(err)
		}
		res.Matrix = inv

	case ModeUnimodularAlpha:
		alpha, err := unimodular.Alpha(req.Matrix)
		if err != nil {
			return err
		}
		res.Matrix = alpha

	case ModeLastRowMinorGCD:
		gcd, minors, err := unimodular.LastRowMinorGCD(req.Matrix)
		if err != nil {
			return err
		}
		res.GCD, res.Minors = gcd, minors
	}

	return nil
}

// stage runs fn inside a child span named name.
func stage[T any](ctx context.Context, o Options, name string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := o.tracer().Start(ctx, name)
	defer span.End()

	v, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return v, err
	}
	span.SetStatus(codes.Ok, "")

	return v, nil
}

// newSolver builds the cone solver for one run. With step events on, every
// step is added to span; otel spans accept events from several goroutines.
func newSolver(mode Mode, o Options, span trace.Span) cone.Solver {
	copts := []cone.Option{cone.WithName(mode.String())}
	if o.traceSteps {
		copts = append(copts, cone.WithObserver(func(s cone.Step) {
			span.AddEvent("cone.step", trace.WithAttributes(
				attribute.Int("cone.step", s.Index),
				attribute.Bool("cone.basis_active", s.BasisActive),
				attribute.Int("cone.basis", len(s.Basis)),
				attribute.Int("cone.fundamental", len(s.Fundamental)),
			))
		}))
	}

	return cone.NewMotzkinBurger(copts...)
}

func isCancelled(err error) bool {
	return errors.Is(err, cone.ErrCancelled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case isCancelled(err):
		return outcomeCancelled
	default:
		return outcomeError
	}
}

func logFinished(id uuid.UUID, mode Mode, elapsed time.Duration, err error) {
	switch outcomeOf(err) {
	case outcomeOK:
		klog.V(1).Infof("worker: job %s (%s) finished in %s", id, mode, elapsed)
	case outcomeCancelled:
		klog.V(1).Infof("worker: job %s (%s) cancelled after %s", id, mode, elapsed)
	default:
		klog.V(1).Infof("worker: job %s (%s) failed after %s: %v", id, mode, elapsed, err)
	}
}

// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
)

// Solver is anything that can produce the fundamental rays of a cone.
// The face indexer depends on this interface, not on MotzkinBurger.
type Solver interface {
	Solve(ctx context.Context, inequalities, basis []numeric.IntVector, dim int) ([]numeric.IntVector, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(ctx context.Context, inequalities, basis []numeric.IntVector, dim int) ([]numeric.IntVector, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, inequalities, basis []numeric.IntVector, dim int) ([]numeric.IntVector, error) {
	return f(ctx, inequalities, basis, dim)
}

// MotzkinBurger is the default Solver. The zero value is ready to use.
type MotzkinBurger struct {
	opts []Option
}

// NewMotzkinBurger returns a Solver that applies opts to every Solve call.
func NewMotzkinBurger(opts ...Option) *MotzkinBurger {
	return &MotzkinBurger{opts: opts}
}

// Solve implements Solver.
func (m *MotzkinBurger) Solve(ctx context.Context, inequalities, basis []numeric.IntVector, dim int) ([]numeric.IntVector, error) {
	return Solve(ctx, inequalities, basis, dim, m.opts...)
}

// Solve returns the reduced fundamental rays of { x : a·x ≤ 0 for every a in
// inequalities } in dimension dim.
//
// Inputs:
//   - inequalities: rows a_i; a zero row is prepended unless the first row is
//     already zero.
//   - basis: starting basis; nil or empty means the unit vectors.
//   - dim: ambient dimension, ≥ 1.
//
// Returns:
//   - the rays, each satisfying every inequality with ≤ 0, deduplicated, in
//     discovery order. An empty system yields an empty result.
//
// Errors:
//   - ErrBadDimension, numeric.ErrDimensionMismatch for malformed input.
//   - ErrCancelled (also matching ctx.Err()) when ctx is done before or
//     during the solve.
//   - *ConsistencyError (matching ErrInternalConsistency) if a combined ray
//     fits neither orientation.
func Solve(ctx context.Context, inequalities, basis []numeric.IntVector, dim int, opts ...Option) ([]numeric.IntVector, error) {
	o := gatherOptions(opts)
	if dim < 1 {
		return nil, errors.Wrapf(ErrBadDimension, "dim=%d", dim)
	}
	if err := checkDims(inequalities, dim, "inequality"); err != nil {
		return nil, err
	}
	if err := checkDims(basis, dim, "basis vector"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, cancelled(err, 1)
	}
	if len(inequalities) == 0 {
		return []numeric.IntVector{}, nil
	}

	eqs := inequalities
	if !eqs[0].IsZero() {
		eqs = make([]numeric.IntVector, 0, len(inequalities)+1)
		eqs = append(eqs, numeric.ZeroIntVector(dim))
		eqs = append(eqs, inequalities...)
	}

	s := &state{dim: dim, opts: o}
	if len(basis) == 0 {
		s.basis = numeric.UnitIntVectors(dim)
	} else {
		s.basis = append([]numeric.IntVector(nil), basis...)
	}

	for i := 1; i < len(eqs); i++ {
		if err := ctx.Err(); err != nil {
			return nil, cancelled(err, i)
		}
		active, err := s.reduceBasis(eqs[i])
		if err != nil {
			return nil, err
		}
		if !active {
			if err = s.eliminate(eqs[:i], eqs[i], i); err != nil {
				return nil, err
			}
		}
		s.fund = numeric.Dedup(s.fund, true)

		klog.V(3).Infof("%s: step %d/%d basis=%d fundamental=%d basisActive=%t",
			o.name, i, len(eqs)-1, len(s.basis), len(s.fund), active)
		if o.observer != nil {
			o.observer(Step{
				Index:       i,
				Inequality:  eqs[i],
				BasisActive: active,
				Basis:       append([]numeric.IntVector(nil), s.basis...),
				Fundamental: append([]numeric.IntVector(nil), s.fund...),
			})
		}
	}

	rays, err := s.finish(eqs, inequalities)
	if err != nil {
		return nil, err
	}

	return rays, nil
}

// state is the mutable working set of one Solve call.
type state struct {
	dim   int
	opts  Options
	basis []numeric.IntVector
	fund  []numeric.IntVector
}

// reduceBasis runs the basis branch for inequality a. It reports false,
// leaving the state untouched, when a is orthogonal to the whole basis.
func (s *state) reduceBasis(a numeric.IntVector) (bool, error) {
	l := make([]*big.Int, len(s.basis))
	j := -1
	for i, b := range s.basis {
		d, err := a.Dot(b)
		if err != nil {
			return false, errors.WithStack(err)
		}
		l[i] = d
		if j < 0 && d.Sign() != 0 {
			j = i
		}
	}
	if j < 0 {
		return false, nil
	}
	if l[j].Sign() > 0 {
		l[j] = new(big.Int).Neg(l[j])
		s.basis[j] = s.basis[j].Negate()
	}
	bj, lj := s.basis[j], l[j]

	next := make([]numeric.IntVector, 0, len(s.basis)-1)
	for i, b := range s.basis {
		if i == j {
			continue
		}
		c, err := numeric.Combine(b, lj, bj, l[i])
		if err != nil {
			return false, errors.WithStack(err)
		}
		next = append(next, c)
	}

	// bj·(a·f) − f·l_j keeps a·f' ≤ 0 for every old ray f.
	fund := make([]numeric.IntVector, 0, len(s.fund)+1)
	fund = append(fund, bj)
	for _, f := range s.fund {
		af, err := a.Dot(f)
		if err != nil {
			return false, errors.WithStack(err)
		}
		c, err := numeric.Combine(bj, af, f, lj)
		if err != nil {
			return false, errors.WithStack(err)
		}
		fund = append(fund, c)
	}

	s.basis, s.fund = next, fund

	return true, nil
}

// eliminate runs the exhausted-basis branch: rays strictly on the positive
// side of a are dropped and replaced by combinations with negative-side rays.
func (s *state) eliminate(prefix []numeric.IntVector, a numeric.IntVector, step int) error {
	var zero, minus, plus []numeric.IntVector
	var minusDot, plusDot []*big.Int
	for _, f := range s.fund {
		d, err := a.Dot(f)
		if err != nil {
			return errors.WithStack(err)
		}
		switch d.Sign() {
		case 0:
			zero = append(zero, f)
		case -1:
			minus, minusDot = append(minus, f), append(minusDot, d)
		default:
			plus, plusDot = append(plus, f), append(plusDot, d)
		}
	}

	var combined []numeric.IntVector
	for n, cn := range minus {
		for p, cp := range plus {
			ok, err := s.adjacent(prefix, cn, cp)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			ray, err := numeric.Combine(cn, plusDot[p], cp, minusDot[n])
			if err != nil {
				return errors.WithStack(err)
			}
			switch orientation(ray, prefix) {
			case orientNonPositive:
				combined = append(combined, ray)
			case orientNonNegative:
				combined = append(combined, ray.Negate())
			default:
				return &ConsistencyError{Step: step, Ray: ray}
			}
		}
	}

	next := make([]numeric.IntVector, 0, len(zero)+len(minus)+len(combined))
	next = append(next, zero...)
	next = append(next, minus...)
	s.fund = append(next, combined...)

	return nil
}

// adjacent decides whether the pair (cn, cp) is combined.
//
// In dimension 2, or with only two rays, every pair is combined. Otherwise
// let Z be the processed inequalities (the implicit zero row excluded) on
// which both cn and cp vanish. The pair is combined unless some third ray
// also vanishes on all of Z. With Z empty the pair is never combined.
func (s *state) adjacent(prefix []numeric.IntVector, cn, cp numeric.IntVector) (bool, error) {
	if s.dim == 2 || len(s.fund) == 2 {
		return true, nil
	}

	var shared []numeric.IntVector
	for _, e := range prefix[1:] {
		dn, err := e.Dot(cn)
		if err != nil {
			return false, errors.WithStack(err)
		}
		dp, err := e.Dot(cp)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if dn.Sign() == 0 && dp.Sign() == 0 {
			shared = append(shared, e)
		}
	}

	for _, f := range s.fund {
		count := 0
		if !f.Equal(cn) && !f.Equal(cp) {
			for _, e := range shared {
				d, err := e.Dot(f)
				if err != nil {
					return false, errors.WithStack(err)
				}
				if d.Sign() == 0 {
					count++
				}
			}
		}
		if count == len(shared) {
			return false, nil
		}
	}

	return true, nil
}

// finish validates the candidates against the full system and applies the
// degeneracy filter against the caller's inequalities.
func (s *state) finish(eqs, original []numeric.IntVector) ([]numeric.IntVector, error) {
	var valid []numeric.IntVector
	for _, f := range numeric.Dedup(s.fund, true) {
		switch orientation(f, eqs) {
		case orientNonPositive:
			valid = append(valid, f)
		case orientNonNegative:
			valid = append(valid, f.Negate())
		default:
			klog.V(2).Infof("%s: dropping ray %s violating the full system", s.opts.name, f)
		}
	}
	valid = numeric.Dedup(valid, true)

	m, err := matrix.FromIntVectors(original)
	if err != nil {
		return nil, errors.Wrap(err, "cone: rank of inequalities")
	}
	rank, err := matrix.Rank(m)
	if err != nil {
		return nil, errors.Wrap(err, "cone: rank of inequalities")
	}

	out := make([]numeric.IntVector, 0, len(valid))
	for _, f := range valid {
		dots, err := numeric.DotAll[numeric.IntVector, *big.Int](f, original)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		zeros := 0
		for _, d := range dots {
			if d.Sign() == 0 {
				zeros++
			}
		}
		if zeros < rank-1 {
			klog.V(2).Infof("%s: dropping degenerate ray %s (%d zero products, rank %d)", s.opts.name, f, zeros, rank)
			continue
		}
		out = append(out, f)
	}

	return out, nil
}

type orient int

const (
	orientNone orient = iota
	orientNonPositive
	orientNonNegative
)

// orientation reports whether every e·x is ≤ 0, else whether every e·x is ≥ 0.
func orientation(x numeric.IntVector, eqs []numeric.IntVector) orient {
	nonPos, nonNeg := true, true
	for _, e := range eqs {
		d, err := e.Dot(x)
		if err != nil {
			return orientNone
		}
		switch d.Sign() {
		case 1:
			nonPos = false
		case -1:
			nonNeg = false
		}
		if !nonPos && !nonNeg {
			return orientNone
		}
	}
	if nonPos {
		return orientNonPositive
	}

	return orientNonNegative
}

func checkDims(vs []numeric.IntVector, dim int, what string) error {
	for i, v := range vs {
		if v.Dim() != dim {
			return errors.Wrapf(numeric.ErrDimensionMismatch, "cone: %s %d has dim %d, want %d", what, i, v.Dim(), dim)
		}
	}

	return nil
}

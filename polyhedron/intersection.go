// SPDX-License-Identifier: MIT

package polyhedron

import (
	"context"
	"math/big"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/powergeom/numeric"
)

// IntersectionTable maps each common normal to the vertex-index tuples
// (one index per polytope) it was found for. Rows are sorted by
// numeric.CompareIntVectors; tuples keep enumeration order.
type IntersectionTable struct {
	rows *treemap.Map // numeric.IntVector -> [][]int
}

// Len returns the number of normals.
func (t *IntersectionTable) Len() int { return t.rows.Size() }

// Normals returns the normals in canonical order.
func (t *IntersectionTable) Normals() []numeric.IntVector {
	out := make([]numeric.IntVector, 0, t.rows.Size())
	for _, k := range t.rows.Keys() {
		out = append(out, k.(numeric.IntVector))
	}

	return out
}

// Tuples returns copies of the tuples recorded for normal.
func (t *IntersectionTable) Tuples(normal numeric.IntVector) [][]int {
	v, ok := t.rows.Get(normal)
	if !ok {
		return nil
	}
	src := v.([][]int)
	out := make([][]int, len(src))
	for i, tup := range src {
		out[i] = append([]int(nil), tup...)
	}

	return out
}

// String renders "normal: [i j] [i j] ..." per line.
func (t *IntersectionTable) String() string {
	var sb strings.Builder
	it := t.rows.Iterator()
	for it.Next() {
		sb.WriteString(it.Key().(numeric.IntVector).String())
		sb.WriteByte(':')
		for _, tup := range it.Value().([][]int) {
			sb.WriteByte(' ')
			sb.WriteString(formatTuple(tup))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Intersect finds the normals shared by several polytopes.
//
// Implementation:
//   - Stage 1: enumerate every tuple (k_1, ..., k_m) with one vertex index per
//     polytope, the last index varying fastest.
//   - Stage 2: for each tuple concatenate the per-polytope vertex systems
//     and solve the joint cone with no basis.
//   - Stage 3: keep a ray only if, for every polytope, it vanishes on at
//     least one row of that polytope's system.
//   - Stage 4: merge in tuple order, appending the tuple under each ray.
//
// Errors:
//   - ErrIntersectionDim (dim < 3), ErrNotEnoughPolyhedra (< dim−1 polytopes),
//     ErrNoVertices, numeric.ErrDimensionMismatch, solver errors.
func Intersect(ctx context.Context, polyhedra [][]numeric.FractionVector, dim int, opts ...Option) (*IntersectionTable, error) {
	o := gatherOptions(opts)
	if dim < 3 {
		return nil, errors.Wrapf(ErrIntersectionDim, "dim=%d", dim)
	}
	if len(polyhedra) < dim-1 {
		return nil, errors.Wrapf(ErrNotEnoughPolyhedra, "got %d for dim %d", len(polyhedra), dim)
	}
	sizes := make([]int, len(polyhedra))
	for p, pts := range polyhedra {
		if len(pts) == 0 {
			return nil, errors.Wrapf(ErrNoVertices, "polytope %d", p)
		}
		if err := checkPointDims(pts, dim); err != nil {
			return nil, errors.Wrapf(err, "polytope %d", p)
		}
		sizes[p] = len(pts)
	}

	tuples := enumerateTuples(sizes)
	results := make([][]numeric.IntVector, len(tuples))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for n, tuple := range tuples {
		n, tuple := n, tuple
		g.Go(func() error {
			rays, err := supportingRays(gctx, o, polyhedra, tuple, dim)
			if err != nil {
				return errors.Wrapf(err, "polyhedron: tuple %s", formatTuple(tuple))
			}
			results[n] = rays

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := &IntersectionTable{rows: treemap.NewWith(intVectorComparator)}
	for n, rays := range results {
		for _, r := range rays {
			var list [][]int
			if v, ok := table.rows.Get(r); ok {
				list = v.([][]int)
			}
			table.rows.Put(r, append(list, tuples[n]))
		}
	}
	klog.V(2).Infof("polyhedron: intersection of %d polytopes has %d normals over %d tuples",
		len(polyhedra), table.Len(), len(tuples))

	return table, nil
}

// supportingRays solves the joint system for one tuple and filters the rays.
func supportingRays(ctx context.Context, o Options, polyhedra [][]numeric.FractionVector, tuple []int, dim int) ([]numeric.IntVector, error) {
	systems := make([][]numeric.IntVector, len(polyhedra))
	var all []numeric.IntVector
	for p, pts := range polyhedra {
		sys, err := vertexSystem(pts, tuple[p])
		if err != nil {
			return nil, err
		}
		systems[p] = sys
		all = append(all, sys...)
	}

	rays, err := o.solver.Solve(ctx, all, nil, dim)
	if err != nil {
		return nil, err
	}

	out := rays[:0]
	for _, r := range rays {
		if touchesEverySystem(r, systems) {
			out = append(out, r)
		}
	}

	return out, nil
}

func touchesEverySystem(r numeric.IntVector, systems [][]numeric.IntVector) bool {
	for _, sys := range systems {
		dots, err := numeric.DotAll[numeric.IntVector, *big.Int](r, sys)
		if err != nil {
			return false
		}
		hit := false
		for _, d := range dots {
			if d.Sign() == 0 {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

// enumerateTuples lists the mixed-radix odometer over sizes, last digit fastest.
func enumerateTuples(sizes []int) [][]int {
	total := 1
	for _, s := range sizes {
		total *= s
	}
	out := make([][]int, 0, total)
	cur := make([]int, len(sizes))
	for n := 0; n < total; n++ {
		out = append(out, append([]int(nil), cur...))
		for d := len(cur) - 1; d >= 0; d-- {
			cur[d]++
			if cur[d] < sizes[d] {
				break
			}
			cur[d] = 0
		}
	}

	return out
}

// SPDX-License-Identifier: MIT

package polyhedron

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/powergeom/numeric"
)

// BuildIncidenceTable finds the normals of the faces through each vertex
// and records their incidence.
//
// Implementation:
//   - Stage 1: for vertex k build the system ToIntVector(v_i − v_k), i ≠ k,
//     followed by commonLimits.
//   - Stage 2: solve every vertex's cone (optionally with basis) on an
//     errgroup bounded by WithParallelism.
//   - Stage 3: merge in vertex order, marking (normal, k) for each normal
//     returned for vertex k.
//
// Errors:
//   - ErrNoVertices, numeric.ErrDimensionMismatch.
//   - Any solver error, annotated with the vertex index; a cancelled ctx
//     surfaces as cone.ErrCancelled.
func BuildIncidenceTable(ctx context.Context, vertices []numeric.FractionVector, commonLimits, basis []numeric.IntVector, opts ...Option) (*IncidenceTable, error) {
	o := gatherOptions(opts)
	if len(vertices) == 0 {
		return nil, errors.WithStack(ErrNoVertices)
	}
	dim := vertices[0].Dim()
	if err := checkPointDims(vertices, dim); err != nil {
		return nil, err
	}

	results := make([][]numeric.IntVector, len(vertices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for k := range vertices {
		k := k
		g.Go(func() error {
			ineqs, err := vertexSystem(vertices, k)
			if err != nil {
				return err
			}
			ineqs = append(ineqs, commonLimits...)
			normals, err := o.solver.Solve(gctx, ineqs, basis, dim)
			if err != nil {
				return errors.Wrapf(err, "polyhedron: vertex %d", k)
			}
			klog.V(2).Infof("polyhedron: vertex %d/%d yields %d normals", k+1, len(vertices), len(normals))
			results[k] = normals

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := newIncidenceTable(len(vertices))
	for k, normals := range results {
		for _, n := range normals {
			table.mark(n, k)
		}
	}
	klog.V(2).Infof("polyhedron: table has %d normals over %d vertices", table.Len(), table.VertexCount())

	return table, nil
}

// vertexSystem returns ToIntVector(p_i − p_k) for every i ≠ k.
func vertexSystem(points []numeric.FractionVector, k int) ([]numeric.IntVector, error) {
	out := make([]numeric.IntVector, 0, len(points)-1)
	for i, p := range points {
		if i == k {
			continue
		}
		d, err := p.Sub(points[k])
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out = append(out, d.ToIntVector())
	}

	return out, nil
}

func checkPointDims(points []numeric.FractionVector, dim int) error {
	for i, p := range points {
		if p.Dim() != dim {
			return errors.Wrapf(numeric.ErrDimensionMismatch, "polyhedron: point %d has dim %d, want %d", i, p.Dim(), dim)
		}
	}

	return nil
}

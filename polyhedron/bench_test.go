// SPDX-License-Identifier: MIT

package polyhedron_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/powergeom/numeric"
	"github.com/katalvlaran/powergeom/polyhedron"
)

func BenchmarkBuildIncidenceTable_Corner(b *testing.B) {
	pts := points(corner...)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyhedron.BuildIncidenceTable(ctx, pts, nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildIncidenceTable_CornerParallel(b *testing.B) {
	pts := points(corner...)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyhedron.BuildIncidenceTable(ctx, pts, nil, nil, polyhedron.WithParallelism(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntersect_TetraWedge(b *testing.B) {
	polys := [][]numeric.FractionVector{points(tetra...), points(wedge...)}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polyhedron.Intersect(ctx, polys, 3); err != nil {
			b.Fatal(err)
		}
	}
}

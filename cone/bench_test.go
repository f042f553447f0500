// SPDX-License-Identifier: MIT

package cone_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/powergeom/cone"
)

func BenchmarkSolve_Octant5D(b *testing.B) {
	tc := regressionCases[2]
	ineqs := vecs(tc.ineqs...)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cone.Solve(ctx, ineqs, nil, tc.dim); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Bruno4D(b *testing.B) {
	tc := regressionCases[5]
	ineqs := vecs(tc.ineqs...)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cone.Solve(ctx, ineqs, nil, tc.dim); err != nil {
			b.Fatal(err)
		}
	}
}

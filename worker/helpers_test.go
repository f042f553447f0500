// SPDX-License-Identifier: MIT

package worker_test

import (
	"github.com/katalvlaran/powergeom/numeric"
)

func fpoints(rows ...[]int64) []numeric.FractionVector {
	out := make([]numeric.FractionVector, len(rows))
	for i, r := range rows {
		out[i] = numeric.FractionVectorFromInts(r...)
	}

	return out
}

func ivecs(rows ...[]int64) []numeric.IntVector {
	out := make([]numeric.IntVector, len(rows))
	for i, r := range rows {
		out[i] = numeric.NewIntVector(r...)
	}

	return out
}

var squarePoints = fpoints([]int64{0, 2}, []int64{2, 0}, []int64{4, 2}, []int64{2, 4})

func intPtr(v int) *int { return &v }

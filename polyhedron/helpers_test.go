// SPDX-License-Identifier: MIT

package polyhedron_test

import (
	"github.com/katalvlaran/powergeom/numeric"
)

func points(rows ...[]int64) []numeric.FractionVector {
	out := make([]numeric.FractionVector, len(rows))
	for i, r := range rows {
		out[i] = numeric.FractionVectorFromInts(r...)
	}

	return out
}

func normalStrings(vs []numeric.IntVector) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}

	return out
}

var (
	square = [][]int64{{0, 2}, {2, 0}, {4, 2}, {2, 4}}
	bruno  = [][]int64{{1, 1, 1}, {4, 0, 0}, {0, 4, 0}, {0, 0, 4}, {2, 0, 2}}
	corner = [][]int64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
)

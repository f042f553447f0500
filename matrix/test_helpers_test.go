// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustInts builds a *Dense from integer literals or fails the test.
func MustInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) numeric.Rational {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireMatrixEqual compares shapes and entries, printing both on failure.
func RequireMatrixEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.True(t, matrix.Equal(want, got), "want:\n%v\ngot:\n%v", want, got)
}

// RequireDiagonal asserts every off-diagonal entry is zero.
func RequireDiagonal(t testing.TB, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if i != j {
				require.True(t, MustAt(t, m, i, j).IsZero(), "off-diagonal (%d,%d) in\n%v", i, j, m)
			}
		}
	}
}

// cofactorDet is the textbook Laplace expansion along the first row; it is
// the independent oracle for Determinant.
func cofactorDet(t testing.TB, m matrix.Matrix) numeric.Rational {
	t.Helper()
	n := m.Rows()
	if n == 0 {
		return numeric.One
	}
	if n == 1 {
		return MustAt(t, m, 0, 0)
	}
	det := numeric.Zero
	for j := 0; j < n; j++ {
		sub, err := matrix.NewDense(n-1, n-1)
		require.NoError(t, err)
		for r := 1; r < n; r++ {
			c := 0
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				require.NoError(t, sub.Set(r-1, c, MustAt(t, m, r, k)))
				c++
			}
		}
		term := MustAt(t, m, 0, j).Mul(cofactorDet(t, sub))
		if j%2 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}

	return det
}

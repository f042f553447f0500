// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the exact linear algebra kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
)

func TestTriangularize(t *testing.T) {
	cases := []struct {
		in, want [][]int64
		sign     int
	}{
		{
			in:   [][]int64{{1, 2, 3}, {2, 5, 8}, {3, 7, 12}},
			want: [][]int64{{1, 2, 3}, {0, 1, 2}, {0, 0, 1}},
			sign: 1,
		},
		{
			in:   [][]int64{{1, 2, 3, 3}, {2, 4, 8, 10}, {3, 7, 12, 13}, {3, 7, 11, 13}},
			want: [][]int64{{1, 2, 3, 3}, {0, 1, 3, 4}, {0, 0, 2, 4}, {0, 0, 0, 2}},
			sign: -1,
		},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			m := MustInts(t, tc.in)
			sign, err := matrix.Triangularize(m)
			require.NoError(t, err)
			assert.Equal(t, tc.sign, sign)
			RequireMatrixEqual(t, MustInts(t, tc.want), m)
		})
	}

	_, err := matrix.Triangularize(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		in   [][]int64
		want string
	}{
		{[][]int64{{4, 6, 6}, {4, 5, 5}, {4, 7, 9}}, "-8"},
		{[][]int64{{1605, -1551, -3586}, {2278, -2267, -5287}, {2275, -2265, -5283}}, "1"},
		{[][]int64{{0, 1}, {1, 0}}, "-1"},
		{[][]int64{{1, 2}, {2, 4}}, "0"},
		{[][]int64{{7}}, "7"},
	}
	for _, tc := range cases {
		m := MustInts(t, tc.in)
		det, err := matrix.Determinant(m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, det.String(), "det %v", tc.in)

		// The input is left untouched.
		RequireMatrixEqual(t, MustInts(t, tc.in), m)
	}
}

func TestDeterminant_MatchesCofactorExpansion(t *testing.T) {
	fixtures := [][][]int64{
		{{2, -1, 0, 3}, {1, 4, -2, 0}, {0, 5, 1, -1}, {3, 0, 2, 2}},
		{{0, 0, 1}, {0, 2, 0}, {3, 0, 0}},
		{{36, 18, 72}, {5, 6, 12}, {2, 8, 16}},
		{{1, 1, 1, 1, 1}, {1, 2, 3, 4, 5}, {1, 4, 9, 16, 25}, {1, 8, 27, 64, 125}, {1, 16, 81, 256, 625}},
	}
	for _, f := range fixtures {
		m := MustInts(t, f)
		det, err := matrix.Determinant(m)
		require.NoError(t, err)
		assert.True(t, cofactorDet(t, m).Equal(det), "det %v", f)
	}

	// Rational entries.
	m, err := matrix.FromRows([][]numeric.Rational{
		{numeric.MustRational(1, 2), numeric.MustRational(1, 3)},
		{numeric.MustRational(-2, 5), numeric.RationalFromInt(4)},
	})
	require.NoError(t, err)
	det, err := matrix.Determinant(hide{m})
	require.NoError(t, err)
	assert.Equal(t, cofactorDet(t, m).String(), det.String())
	assert.Equal(t, "32/15", det.String())
}

func TestMinor(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	got, err := matrix.Minor(m, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "-3", got.String())

	got, err = matrix.Minor(m, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "-6", got.String())

	got, err = matrix.Minor(m, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())

	_, err = matrix.Minor(m, 0, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(m, -2, matrix.NoSkip)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(MustInts(t, [][]int64{{1, 2, 3}}), matrix.NoSkip, matrix.NoSkip)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	one := MustInts(t, [][]int64{{5}})
	got, err = matrix.Minor(one, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())
}

func TestInverse(t *testing.T) {
	cases := []struct{ in, want [][]int64 }{
		{
			in:   [][]int64{{1, 0, 0}, {-3, 1, 0}, {0, 0, 1}},
			want: [][]int64{{1, 0, 0}, {3, 1, 0}, {0, 0, 1}},
		},
		{
			in:   [][]int64{{1, -3, 2}, {0, 1, -2}, {0, 0, 1}},
			want: [][]int64{{1, 3, 4}, {0, 1, 2}, {0, 0, 1}},
		},
	}
	for _, tc := range cases {
		inv, err := matrix.Inverse(MustInts(t, tc.in))
		require.NoError(t, err)
		RequireMatrixEqual(t, MustInts(t, tc.want), inv)
	}
}

func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	fixtures := [][][]int64{
		{{4, 6, 6}, {4, 5, 5}, {4, 7, 9}},
		{{0, 2, 1}, {3, 0, 0}, {1, 1, 1}},
		{{2, -1, 0, 3}, {1, 4, -2, 0}, {0, 5, 1, -1}, {3, 0, 2, 2}},
		{{1605, -1551, -3586}, {2278, -2267, -5287}, {2275, -2265, -5283}},
	}
	for _, f := range fixtures {
		m := MustInts(t, f)
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		prod, err := matrix.Mul(inv, m)
		require.NoError(t, err)
		id, err := matrix.NewIdentity(len(f))
		require.NoError(t, err)
		RequireMatrixEqual(t, id, prod)
	}
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(MustInts(t, [][]int64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.InverseOf(MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRank(t *testing.T) {
	cases := []struct {
		in   [][]int64
		want int
	}{
		{[][]int64{{0, 0}, {0, 0}}, 0},
		{[][]int64{{0, 1}, {0, 0}}, 1},
		{[][]int64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}, 2},
		{[][]int64{{1, 0, 0}, {0, 0, 1}}, 2},
		{[][]int64{{4, 6, 6}, {4, 5, 5}, {4, 7, 9}}, 3},
		{[][]int64{{1, -1, 3, -8}, {-1, 2, -1, 1}, {2, -1, -2, 1}, {-3, 1, -1, 6}, {1, 1, -3, 2}}, 4},
	}
	for _, tc := range cases {
		got, err := matrix.Rank(MustInts(t, tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "rank %v", tc.in)
	}
}

func TestRank_InvariantUnderPermutationAndNegation(t *testing.T) {
	base := [][]int64{{0, 2, 4, 1}, {1, 0, 0, 3}, {1, 2, 4, 4}, {0, 0, 0, 5}}
	want, err := matrix.Rank(MustInts(t, base))
	require.NoError(t, err)
	require.Equal(t, 3, want)

	m := MustInts(t, base)
	require.NoError(t, m.SwapRows(0, 3))
	require.NoError(t, m.SwapCols(1, 3))
	require.NoError(t, m.SwapCols(0, 2))
	for j := 0; j < m.Cols(); j++ {
		require.NoError(t, m.Set(2, j, MustAt(t, m, 2, j).Neg()))
	}
	got, err := matrix.Rank(hide{m})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMulTranspose(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustInts(t, [][]int64{{1, 0}, {0, 1}, {1, 1}})

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{4, 5}, {10, 11}}), p)

	tr, err := matrix.T(hide{a})
	require.NoError(t, err)
	RequireMatrixEqual(t, MustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}), tr)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

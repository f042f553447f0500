// SPDX-License-Identifier: MIT
// Package matrix provides exact kernels on any Matrix implementation:
// multiplication, transpose, triangularization, rank, determinant, minors and
// inverse. All functions perform strict fail-fast validation and return
// tagged sentinel errors.
//
// Notes:
//   - Elimination always picks the first nonzero entry as pivot. Arithmetic is
//     exact, so no partial pivoting is needed for stability.
//   - Kernels never mutate their inputs except Triangularize and
//     ToDiagonalForm, which are documented as in-place.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/powergeom/numeric"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opTriangularize = "Triangularize"
	opRank          = "Rank"
	opMinor         = "Minor"
	opInverse       = "Inverse"
	opDiagonal      = "ToDiagonalForm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustQuo divides by a pivot known to be nonzero.
// A zero pivot here is a programmer error, hence the panic.
func mustQuo(a, b numeric.Rational) numeric.Rational {
	q, err := a.Div(b)
	if err != nil {
		panic(err)
	}

	return q
}

// subScaledRow performs dst[j] -= f*src[j] for j ≥ from.
func subScaledRow(dst, src []numeric.Rational, f numeric.Rational, from int) {
	for j := from; j < len(dst); j++ {
		if src[j].IsZero() {
			continue
		}
		dst[j] = dst[j].Sub(f.Mul(src[j]))
	}
}

// Mul returns a·b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := newDenseZeroOK(da.r, db.c)
	var i, j, k int
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			aik := da.rows[i][k]
			if aik.IsZero() {
				continue
			}
			for j = 0; j < db.c; j++ {
				out.rows[i][j] = out.rows[i][j].Add(aik.Mul(db.rows[k][j]))
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDenseZeroOK(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.rows[j][i] = d.rows[i][j]
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and entries.
// Nil or unreadable inputs compare unequal.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err1 := a.At(i, j)
			y, err2 := b.At(i, j)
			if err1 != nil || err2 != nil || !x.Equal(y) {
				return false
			}
		}
	}

	return true
}

// Triangularize reduces m in place to upper-triangular form and returns the
// determinant sign correction caused by row swaps (+1 or -1).
//
// Implementation:
//   - For each diagonal position k: take the first row i ≥ k with m[i][k] ≠ 0
//     as pivot, swap it up (flipping the sign), then clear column k below it.
//   - Columns without a pivot are skipped, leaving a zero on the diagonal.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1) beyond the matrix.
func Triangularize(m *Dense) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTriangularize, err)
	}

	return triangularize(m), nil
}

func triangularize(m *Dense) int {
	sign := 1
	n := min(m.r, m.c)
	for k := 0; k < n; k++ {
		p := k
		for p < m.r && m.rows[p][k].IsZero() {
			p++
		}
		if p == m.r {
			continue
		}
		if p != k {
			m.rows[p], m.rows[k] = m.rows[k], m.rows[p]
			sign = -sign
		}
		pivot := m.rows[k][k]
		for i := k + 1; i < m.r; i++ {
			if m.rows[i][k].IsZero() {
				continue
			}
			f := mustQuo(m.rows[i][k], pivot)
			subScaledRow(m.rows[i], m.rows[k], f, k+1)
			m.rows[i][k] = numeric.Zero
		}
	}

	return sign
}

// Rank returns the rank of m. The zero matrix has rank 0.
//
// Implementation:
//   - Stage 1: zero matrix ⇒ 0.
//   - Stage 2: reduce a copy to row-echelon form with first-nonzero pivoting;
//     the pivot row advances only when a pivot is found, so the count of
//     pivots is the rank whatever the column layout.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c) for the copy.
func Rank(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if d.IsZero() {
		return 0, nil
	}

	return echelonRank(d.clone()), nil
}

func echelonRank(m *Dense) int {
	row := 0
	for col := 0; col < m.c && row < m.r; col++ {
		p := row
		for p < m.r && m.rows[p][col].IsZero() {
			p++
		}
		if p == m.r {
			continue
		}
		m.rows[p], m.rows[row] = m.rows[row], m.rows[p]
		pivot := m.rows[row][col]
		for i := row + 1; i < m.r; i++ {
			if m.rows[i][col].IsZero() {
				continue
			}
			subScaledRow(m.rows[i], m.rows[row], mustQuo(m.rows[i][col], pivot), col)
		}
		row++
	}

	return row
}

// Determinant returns det(m) for a square m.
func Determinant(m Matrix) (numeric.Rational, error) {
	return Minor(m, NoSkip, NoSkip)
}

// Minor returns the determinant of m with row skipRow and column skipCol
// removed. Pass NoSkip to keep all rows (or columns).
//
// Implementation:
//   - Stage 1: validate (non-nil, square, skip indices in range).
//   - Stage 2: copy the remaining cells into a fresh matrix.
//   - Stage 3: triangularize and multiply the diagonal by the swap sign.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Notes:
//   - Skipping only one of the two indices yields a non-square submatrix,
//     whose diagonal product is still returned (it is what the elimination gives).
//   - The determinant of an empty (0×0) submatrix is 1.
func Minor(m Matrix, skipRow, skipCol int) (numeric.Rational, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return numeric.Rational{}, matrixErrorf(opMinor, err)
	}
	if err := validateSkip(skipRow, m.Rows()); err != nil {
		return numeric.Rational{}, matrixErrorf(opMinor, err)
	}
	if err := validateSkip(skipCol, m.Cols()); err != nil {
		return numeric.Rational{}, matrixErrorf(opMinor, err)
	}
	d, err := toDense(m)
	if err != nil {
		return numeric.Rational{}, matrixErrorf(opMinor, err)
	}

	rows, cols := d.r, d.c
	if skipRow != NoSkip {
		rows--
	}
	if skipCol != NoSkip {
		cols--
	}
	sub := newDenseZeroOK(rows, cols)
	si := 0
	for i := 0; i < d.r; i++ {
		if i == skipRow {
			continue
		}
		sj := 0
		for j := 0; j < d.c; j++ {
			if j == skipCol {
				continue
			}
			sub.rows[si][sj] = d.rows[i][j]
			sj++
		}
		si++
	}

	sign := triangularize(sub)
	det := numeric.RationalFromInt(int64(sign))
	for k := 0; k < min(rows, cols); k++ {
		det = det.Mul(sub.rows[k][k])
	}

	return det, nil
}

// Inverse returns m⁻¹ via Gauss–Jordan elimination on [m | I].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when det(m) == 0.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det.IsZero() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	a := d.clone()
	inv := identity(n)
	for k := 0; k < n; k++ {
		p := k
		for p < n && a.rows[p][k].IsZero() {
			p++
		}
		if p == n {
			// Unreachable once det ≠ 0 has been established.
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		a.rows[p], a.rows[k] = a.rows[k], a.rows[p]
		inv.rows[p], inv.rows[k] = inv.rows[k], inv.rows[p]

		scale := mustQuo(numeric.One, a.rows[k][k])
		for j := 0; j < n; j++ {
			a.rows[k][j] = a.rows[k][j].Mul(scale)
			inv.rows[k][j] = inv.rows[k][j].Mul(scale)
		}
		for i := 0; i < n; i++ {
			if i == k || a.rows[i][k].IsZero() {
				continue
			}
			f := a.rows[i][k]
			subScaledRow(a.rows[i], a.rows[k], f, 0)
			subScaledRow(inv.rows[i], inv.rows[k], f, 0)
		}
	}

	return inv, nil
}

// identity returns I_n; n may be 0.
func identity(n int) *Dense {
	out := newDenseZeroOK(n, n)
	for i := 0; i < n; i++ {
		out.rows[i][i] = numeric.One
	}

	return out
}

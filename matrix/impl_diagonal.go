// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/powergeom/numeric"
)

// diagState carries the matrix under reduction together with the two
// accumulated transforms. Every row operation hits a and rowT; every column
// operation hits a and colT, which keeps rowT·A₀·colT == a at all times.
type diagState struct {
	a, rowT, colT *Dense
}

func (s *diagState) swapRows(i, j int) {
	if i == j {
		return
	}
	s.a.rows[i], s.a.rows[j] = s.a.rows[j], s.a.rows[i]
	s.rowT.rows[i], s.rowT.rows[j] = s.rowT.rows[j], s.rowT.rows[i]
}

func (s *diagState) swapCols(i, j int) {
	if i == j {
		return
	}
	_ = s.a.SwapCols(i, j)
	_ = s.colT.SwapCols(i, j)
}

// negRow flips the sign of row i in a and rowT.
func (s *diagState) negRow(i int) {
	for _, row := range [][]numeric.Rational{s.a.rows[i], s.rowT.rows[i]} {
		for j := range row {
			row[j] = row[j].Neg()
		}
	}
}

// subRow performs row_dst -= q·row_src.
func (s *diagState) subRow(dst, src int, q numeric.Rational) {
	subScaledRow(s.a.rows[dst], s.a.rows[src], q, 0)
	subScaledRow(s.rowT.rows[dst], s.rowT.rows[src], q, 0)
}

// subCol performs col_dst -= q·col_src.
func (s *diagState) subCol(dst, src int, q numeric.Rational) {
	for _, m := range []*Dense{s.a, s.colT} {
		for _, row := range m.rows {
			if row[src].IsZero() {
				continue
			}
			row[dst] = row[dst].Sub(q.Mul(row[src]))
		}
	}
}

// smallestInCorner scans row k (columns k..) and then column k (rows k+1..)
// for the entry of least nonzero magnitude. Ties keep the first one seen.
func (s *diagState) smallestInCorner(k int) (int, int, bool) {
	bi, bj := -1, -1
	var best numeric.Rational
	consider := func(i, j int) {
		v := s.a.rows[i][j]
		if v.IsZero() {
			return
		}
		if bi < 0 || v.Abs().Cmp(best) < 0 {
			bi, bj, best = i, j, v.Abs()
		}
	}
	for j := k; j < s.a.c; j++ {
		consider(k, j)
	}
	for i := k + 1; i < s.a.r; i++ {
		consider(i, k)
	}

	return bi, bj, bi >= 0
}

// firstNonZero returns the first nonzero cell of the trailing submatrix
// [k.., k..] in row-major order.
func (s *diagState) firstNonZero(k int) (int, int, bool) {
	for i := k; i < s.a.r; i++ {
		for j := k; j < s.a.c; j++ {
			if !s.a.rows[i][j].IsZero() {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// columnCleared reports whether column k is zero below the corner.
func (s *diagState) columnCleared(k int) bool {
	for i := k + 1; i < s.a.r; i++ {
		if !s.a.rows[i][k].IsZero() {
			return false
		}
	}

	return true
}

func (s *diagState) cornerCleared(k int) bool {
	for j := k + 1; j < s.a.c; j++ {
		if !s.a.rows[k][j].IsZero() {
			return false
		}
	}

	return s.columnCleared(k)
}

// ToDiagonalForm reduces m in place to diagonal form using integer row and
// column operations and returns the accumulated transforms, so that
// rowT · original · colT == m afterwards.
//
// Implementation (explicit loop over the corner index k):
//   - Stage 1: find the smallest nonzero |entry| in row k / column k and swap
//     it into the corner. If row k and column k are all zero, swap in the
//     first nonzero entry of the trailing submatrix; if there is none, stop.
//   - Stage 2: a negative pivot with nonzero entries below it is negated
//     together with its row, so every row reduced against it sees a
//     positive divisor.
//   - Stage 3: subtract round(x/pivot) multiples of column k from the columns
//     to the right, then of row k from the rows below (round half up).
//   - Stage 4: repeat until row k and column k are clear apart from the
//     corner. Remainders never exceed |pivot|/2, so each pass shrinks the
//     smallest entry and the loop terminates: this is the Euclidean algorithm
//     spread over a row and a column.
//
// Behavior highlights:
//   - A corner that is already isolated when it is placed keeps its sign,
//     so the diagonal may still carry negative entries (e.g. -1 for
//     [[0 1 -1] [2 -3 0] [0 0 0]]).
//   - rowT and colT are products of swaps and integer shears, so for
//     integer input both are unimodular.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Polynomial in the bit size of the entries per corner; O(min(r,c)) corners.
func ToDiagonalForm(m *Dense) (rowT, colT *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opDiagonal, err)
	}
	s := &diagState{a: m, rowT: identity(m.r), colT: identity(m.c)}

	n := min(m.r, m.c)
	for k := 0; k < n; k++ {
		for {
			bi, bj, ok := s.smallestInCorner(k)
			if !ok {
				i, j, found := s.firstNonZero(k)
				if !found {
					return s.rowT, s.colT, nil
				}
				s.swapRows(k, i)
				s.swapCols(k, j)
				continue
			}
			if bi == k {
				s.swapCols(k, bj)
			} else {
				s.swapRows(k, bi)
			}

			if m.rows[k][k].Sign() < 0 && !s.columnCleared(k) {
				s.negRow(k)
			}

			pivot := m.rows[k][k]
			for j := k + 1; j < m.c; j++ {
				if q := m.rows[k][j]; !q.IsZero() {
					s.subCol(j, k, numeric.RationalFromBig(mustQuo(q, pivot).Round()))
				}
			}
			for i := k + 1; i < m.r; i++ {
				if q := m.rows[i][k]; !q.IsZero() {
					s.subRow(i, k, numeric.RationalFromBig(mustQuo(q, pivot).Round()))
				}
			}
			if s.cornerCleared(k) {
				break
			}
		}
	}

	return s.rowT, s.colT, nil
}

// Diagonalize is the non-mutating form of ToDiagonalForm: it returns the
// diagonal matrix alongside the transforms and leaves m untouched.
func Diagonalize(m Matrix) (diag, rowT, colT *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opDiagonal, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opDiagonal, err)
	}
	diag = d.clone()
	rowT, colT, err = ToDiagonalForm(diag)
	if err != nil {
		return nil, nil, nil, err
	}

	return diag, rowT, colT, nil
}

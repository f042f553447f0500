// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row arena) & safe accessors.
//
// Purpose:
//   - Keep each row in its own slice so elimination can swap rows by index
//     (two slice headers) instead of copying elements.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Value semantics: Clone copies every row, so two matrices never alias storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/SwapRows: O(1); SwapCols: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/powergeom/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete rational matrix.
//   - r,c hold dimensions (rows, cols).
//   - rows is the row arena: len(rows) == r, len(rows[i]) == c.
type Dense struct {
	r, c int
	rows [][]numeric.Rational
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Notes:
//   - Internal zero-sized cases (the minor of a 1×1 matrix) use newDenseZeroOK.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols), nil
}

// newDenseZeroOK allocates without shape validation; 0×0 is legal here.
func newDenseZeroOK(rows, cols int) *Dense {
	arena := make([][]numeric.Rational, rows)
	for i := range arena {
		// Rational's zero value is 0, so make() zero-fills correctly.
		arena[i] = make([]numeric.Rational, cols)
	}

	return &Dense{r: rows, c: cols, rows: arena}
}

// FromRows builds a Dense from a non-empty rectangular slice of rows. The
// input is copied.
func FromRows(rows [][]numeric.Rational) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	d := newDenseZeroOK(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != d.c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), d.c, ErrInvalidDimensions)
		}
		copy(d.rows[i], row)
	}

	return d, nil
}

// FromInts builds a Dense from integer literals.
func FromInts(rows [][]int64) (*Dense, error) {
	conv := make([][]numeric.Rational, len(rows))
	for i, row := range rows {
		conv[i] = make([]numeric.Rational, len(row))
		for j, v := range row {
			conv[i][j] = numeric.RationalFromInt(v)
		}
	}

	return FromRows(conv)
}

// FromIntVectors stacks vectors as rows. All vectors must share one dimension.
func FromIntVectors(vs []numeric.IntVector) (*Dense, error) {
	if len(vs) == 0 || vs[0].Dim() == 0 {
		return nil, ErrInvalidDimensions
	}
	d := newDenseZeroOK(len(vs), vs[0].Dim())
	for i, v := range vs {
		if v.Dim() != d.c {
			return nil, fmt.Errorf("FromIntVectors: row %d: %w", i, ErrDimensionMismatch)
		}
		for j := 0; j < d.c; j++ {
			d.rows[i][j] = numeric.RationalFromBig(v.At(j))
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (numeric.Rational, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return numeric.Rational{}, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.rows[i][j], nil
}

// Set stores v at (i, j).
func (m *Dense) Set(i, j int, v numeric.Rational) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.rows[i][j] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) []numeric.Rational {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]numeric.Rational, m.c)
	copy(out, m.rows[i])

	return out
}

// SwapRows exchanges rows i and j in O(1).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// SwapCols exchanges columns i and j in O(r).
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf("SwapCols", i, j, ErrOutOfRange)
	}
	for _, row := range m.rows {
		row[i], row[j] = row[j], row[i]
	}

	return nil
}

// Clone returns a deep copy (value semantics; no shared rows).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	out := newDenseZeroOK(m.r, m.c)
	for i, row := range m.rows {
		copy(out.rows[i], row)
	}

	return out
}

// IsZero reports whether every element is zero.
func (m *Dense) IsZero() bool {
	for _, row := range m.rows {
		for _, v := range row {
			if !v.IsZero() {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// toDense returns m itself when it is a *Dense (fast path) or a *Dense copy
// built through the interface (fallback path).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out := newDenseZeroOK(m.Rows(), m.Cols())
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.rows[i][j] = v
		}
	}

	return out, nil
}

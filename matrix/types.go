// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/powergeom/numeric"

// NoSkip tells Minor to keep every row (or column).
const NoSkip = -1

// Matrix is the minimal read/write surface shared by all kernels.
// Kernels take a fast path on *Dense and fall back to At/Set otherwise.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (numeric.Rational, error)

	// Set stores v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v numeric.Rational) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

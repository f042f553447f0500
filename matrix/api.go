// SPDX-License-Identifier: MIT
// Public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/powergeom/numeric"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return identity(n), nil
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// Product is a discoverability alias for Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is a short alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Det is a short alias for Determinant.
func Det(m Matrix) (numeric.Rational, error) { return Determinant(m) }

// InverseOf is a discoverability alias for Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

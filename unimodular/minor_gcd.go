// SPDX-License-Identifier: MIT

package unimodular

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
)

// LastRowMinorGCD deletes the last row of m and each column c in turn and
// returns the gcd of the resulting minors along with the signed minors in
// column order. The last row's contents are ignored.
//
// Errors: ErrNonSquare, matrix.ErrNilMatrix, ErrNonIntegerMinor.
func LastRowMinorGCD(m matrix.Matrix) (*big.Int, []*big.Int, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, errors.Wrap(err, "unimodular")
	}
	last := m.Rows() - 1
	minors := make([]*big.Int, m.Cols())
	for c := range minors {
		det, err := matrix.Minor(m, last, c)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "unimodular: minor (%d, %d)", last, c)
		}
		v, err := det.Int()
		if err != nil {
			return nil, nil, errors.Wrapf(ErrNonIntegerMinor, "column %d: %s", c, det)
		}
		minors[c] = v
	}

	return numeric.GCDOf(minors...), minors, nil
}

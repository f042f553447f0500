// SPDX-License-Identifier: MIT

package unimodular

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/powergeom/matrix"
)

// Decomposition is m = RowInv·Diag·ColInv together with Alpha = RowInv·ColInv.
type Decomposition struct {
	Diag   *matrix.Dense
	RowInv *matrix.Dense
	ColInv *matrix.Dense
	Alpha  *matrix.Dense
}

// Alpha returns inverse(rowT)·inverse(colT) for the diagonal form of m.
// m is not modified.
//
// Errors: ErrNonSquare, matrix.ErrNilMatrix.
func Alpha(m matrix.Matrix) (*matrix.Dense, error) {
	d, err := Decompose(m)
	if err != nil {
		return nil, err
	}

	return d.Alpha, nil
}

// Decompose diagonalizes a copy of m and returns every factor.
// It checks RowInv·Diag·ColInv == m before returning.
func Decompose(m matrix.Matrix) (*Decomposition, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, errors.Wrap(err, "unimodular")
	}
	diag, rowT, colT, err := matrix.Diagonalize(m)
	if err != nil {
		return nil, errors.Wrap(err, "unimodular")
	}
	// Transforms are unimodular, so inversion cannot hit ErrSingular.
	rowInv, err := matrix.Inverse(rowT)
	if err != nil {
		return nil, errors.Wrap(err, "unimodular: row transform")
	}
	colInv, err := matrix.Inverse(colT)
	if err != nil {
		return nil, errors.Wrap(err, "unimodular: column transform")
	}

	back, err := matrix.Mul(rowInv, diag)
	if err == nil {
		back, err = matrix.Mul(back, colInv)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unimodular")
	}
	if !matrix.Equal(back, m) {
		return nil, errors.WithStack(ErrReconstruction)
	}

	alpha, err := matrix.Mul(rowInv, colInv)
	if err != nil {
		return nil, errors.Wrap(err, "unimodular")
	}
	klog.V(2).Infof("unimodular: %dx%d diagonal form found", m.Rows(), m.Cols())

	return &Decomposition{Diag: diag, RowInv: rowInv, ColInv: colInv, Alpha: alpha}, nil
}

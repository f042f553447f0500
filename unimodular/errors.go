// SPDX-License-Identifier: MIT

package unimodular

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/powergeom/matrix"
)

var (
	// ErrNonSquare is matrix.ErrNonSquare; both Alpha and LastRowMinorGCD
	// need a square input.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNonIntegerMinor is returned by LastRowMinorGCD when a minor is not
	// an integer.
	ErrNonIntegerMinor = errors.New("unimodular: non-integer minor")

	// ErrReconstruction is returned when rowT⁻¹·D·colT⁻¹ does not give back
	// the input. It indicates a bug in the diagonalization.
	ErrReconstruction = errors.New("unimodular: diagonal form does not reconstruct input")
)

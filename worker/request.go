// SPDX-License-Identifier: MIT

package worker

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/powergeom/lattice"
	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
	"github.com/katalvlaran/powergeom/polyhedron"
)

// Request is the input of one pipeline run. Only the fields used by Mode
// need to be set.
type Request struct {
	Mode Mode

	// Dim is the ambient dimension. When zero it is taken from the first
	// point, polytope vertex or inequality.
	Dim int

	// ModePolyhedron.
	Points       []numeric.FractionVector
	CommonLimits []numeric.IntVector

	// ModePolyhedron and ModeCone; nil means the unit basis.
	Basis []numeric.IntVector

	// ModeIntersection.
	Polyhedra [][]numeric.FractionVector

	// ModeCone.
	Inequalities []numeric.IntVector

	// Matrix modes.
	Matrix *matrix.Dense

	// ModeDeterminant: indices to delete. nil keeps every row or column,
	// so a zero-value Request computes the full determinant.
	SkipRow *int
	SkipCol *int
}

// Result is the output of one pipeline run. Exactly the fields of the
// request's Mode are populated.
type Result struct {
	ID      uuid.UUID
	Mode    Mode
	Elapsed time.Duration

	// ModePolyhedron.
	Table   *polyhedron.IncidenceTable
	Lattice *lattice.Lattice

	// ModeIntersection.
	Intersection *polyhedron.IntersectionTable

	// ModeCone.
	Rays []numeric.IntVector

	// ModeDeterminant.
	Determinant *numeric.Rational

	// ModeInverse and ModeUnimodularAlpha.
	Matrix *matrix.Dense

	// ModeLastRowMinorGCD.
	GCD    *big.Int
	Minors []*big.Int
}

// skipIndex maps an unset skip index to matrix.NoSkip.
func skipIndex(p *int) int {
	if p == nil {
		return matrix.NoSkip
	}

	return *p
}

// dim resolves Request.Dim for the geometric modes.
func (r Request) dim() int {
	if r.Dim > 0 {
		return r.Dim
	}
	switch r.Mode {
	case ModePolyhedron:
		if len(r.Points) > 0 {
			return r.Points[0].Dim()
		}
	case ModeIntersection:
		if len(r.Polyhedra) > 0 && len(r.Polyhedra[0]) > 0 {
			return r.Polyhedra[0][0].Dim()
		}
	case ModeCone:
		if len(r.Inequalities) > 0 {
			return r.Inequalities[0].Dim()
		}
	}

	return 0
}

// Validate checks that the inputs of r.Mode are present. Shape errors deeper
// in the data are left to the pipeline itself.
func (r Request) Validate() error {
	if !r.Mode.Valid() {
		return errors.Wrapf(ErrUnknownMode, "%d", int(r.Mode))
	}
	switch r.Mode {
	case ModePolyhedron:
		if len(r.Points) == 0 {
			return errors.Wrap(ErrInvalidRequest, "polyhedron: no points")
		}
		if r.dim() < 2 {
			return errors.Wrapf(ErrInvalidRequest, "polyhedron: dim %d < 2", r.dim())
		}
	case ModeIntersection:
		if len(r.Polyhedra) == 0 {
			return errors.Wrap(ErrInvalidRequest, "intersection: no polyhedra")
		}
	case ModeCone:
		if r.dim() < 1 {
			return errors.Wrap(ErrInvalidRequest, "cone: dimension unknown")
		}
	default:
		if r.Matrix == nil {
			return errors.Wrapf(ErrInvalidRequest, "%s: no matrix", r.Mode)
		}
	}

	return nil
}

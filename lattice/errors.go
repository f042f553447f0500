// SPDX-License-Identifier: MIT

package lattice

import "github.com/pkg/errors"

var (
	// ErrBadDimension is returned by Build for a polytope dimension below 2.
	ErrBadDimension = errors.New("lattice: polytope dimension must be >= 2")

	// ErrLevelOutOfRange is returned for a face dimension outside [0, d−1].
	ErrLevelOutOfRange = errors.New("lattice: level out of range")

	// ErrFaceOutOfRange is returned for a face index outside its level.
	ErrFaceOutOfRange = errors.New("lattice: face index out of range")

	// ErrNegativeVertex is returned when an incidence row holds a negative index.
	ErrNegativeVertex = errors.New("lattice: negative vertex index")

	// ErrStopWalk may be returned by a VisitFunc to end Walk early; Walk then
	// returns nil.
	ErrStopWalk = errors.New("lattice: stop walk")
)

// SPDX-License-Identifier: MIT

package polyhedron

import "github.com/pkg/errors"

var (
	// ErrNoVertices is returned for an empty point set (or an empty polytope
	// passed to Intersect).
	ErrNoVertices = errors.New("polyhedron: no vertices")

	// ErrIntersectionDim is returned by Intersect for dim < 3.
	ErrIntersectionDim = errors.New("polyhedron: intersection needs dim >= 3")

	// ErrNotEnoughPolyhedra is returned by Intersect when fewer than dim−1
	// polytopes are supplied.
	ErrNotEnoughPolyhedra = errors.New("polyhedron: intersection needs at least dim-1 polytopes")
)

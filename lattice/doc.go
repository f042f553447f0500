// SPDX-License-Identifier: MIT

// Package lattice builds the face lattice of a polytope from its
// normal-vector incidence table.
//
// Each row of the table lists the vertices lying on one facet. Faces of
// dimension t are found as intersections of d−t rows; a face is kept when it
// has more than t points and is not strictly contained in another candidate
// of the same level. Every face then links to the faces one level up that
// contain it (its parents). Vertices touched by fewer than d−1 edges are
// dropped as artifacts of degenerate tables.
//
// Usage:
//
//	table, _ := polyhedron.BuildIncidenceTable(ctx, points, nil, nil)
//	lat, err := lattice.Build(table, 3)
//	for i, f := range lat.Level(0) {
//		fmt.Println(i, f.Points(), f.Parents())
//	}
//
// Ordering:
//
//	Faces inside a level are sorted by their point lists, compared
//	element-wise and then by length. Parent indices refer to that order in
//	the level above and are ascending.
//
// Complexity:
//
//	Level t enumerates C(rows, d−t) combinations, so the builder is meant for
//	the small tables produced by low-dimensional polytopes.
package lattice

// SPDX-License-Identifier: MIT

// Package powergeom is an exact-arithmetic toolkit for Newton polyhedra:
// cone rays, facet normals, face lattices and unimodular transforms.
//
// 🚀 What is inside?
//
//	numeric/     : Rational, IntVector, FractionVector on math/big
//	matrix/      : dense rational matrices, rank, determinant, minors,
//	               inverse, Smith-like diagonal form
//	cone/        : Motzkin–Burger solver for { x : a_i·x ≤ 0 }
//	polyhedron/  : incidence table of a point set, poly-intersection
//	lattice/     : face lattice built from an incidence table
//	unimodular/  : unimodular alpha matrix, last-row minor gcd
//	worker/      : pipelines behind one background goroutine, with
//	               YAML config, Prometheus metrics and OpenTelemetry spans
//
// ✨ Guarantees:
//
//   - Every computation is exact; there is no floating point anywhere.
//   - Results are deterministic: parallel solves merge in input order.
//   - Long computations honor context cancellation and never return
//     partial results.
//
// Quick example:
//
//	pts := []numeric.FractionVector{
//		numeric.FractionVectorFromInts(0, 2),
//		numeric.FractionVectorFromInts(2, 0),
//		numeric.FractionVectorFromInts(4, 2),
//		numeric.FractionVectorFromInts(2, 4),
//	}
//	table, _ := polyhedron.BuildIncidenceTable(ctx, pts, nil, nil)
//	lat, _ := lattice.Build(table, 2)
//	fmt.Print(lat)
//
//	go get github.com/katalvlaran/powergeom
package powergeom

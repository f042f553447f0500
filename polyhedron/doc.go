// SPDX-License-Identifier: MIT

// Package polyhedron turns point sets into normal-vector incidence data.
//
// The polyhedron package provides:
//
//   - BuildIncidenceTable: for every vertex v_k it solves the cone
//     { n : n·(v_i − v_k) ≤ 0 for all i } (plus optional common limits) and
//     records which vertices each resulting normal touches. The table is the
//     input of the face-lattice builder (package lattice).
//   - Intersect: for several polytopes at once, enumerates one vertex per
//     polytope, solves the joint cone and keeps the normals supporting every
//     polytope simultaneously.
//
// Both run their independent cone solves on an errgroup limited by
// WithParallelism (default 1) and merge results in input order, so output
// never depends on scheduling.
//
// Determinism:
//
//	Rows are kept in a red-black tree ordered by numeric.CompareIntVectors;
//	vertex indices within a row are kept ascending.
package polyhedron

// SPDX-License-Identifier: MIT

// Package matrix provides exact linear algebra over numeric.Rational.
//
// The matrix package provides:
//
//   - Dense: a rectangular matrix stored as an arena of row slices, so row
//     swaps exchange slice headers by index and Clone is a deep value copy.
//   - Triangularize / Rank / Determinant / Minor / Inverse: elimination with
//     first-nonzero pivoting. No pivoting strategy is needed for stability
//     because every entry is an exact fraction.
//   - ToDiagonalForm / Diagonalize: integer row/column reduction of a matrix
//     to diagonal form with the accumulated transforms, such that
//     rowT · A · colT is diagonal.
//
// All public functions validate shapes and return sentinel errors
// (ErrNonSquare, ErrSingular, ErrDimensionMismatch, ErrOutOfRange, ...)
// that callers match with errors.Is.
//
// Quick example:
//
//	m, _ := matrix.FromInts([][]int64{{4, 6, 6}, {4, 5, 5}, {4, 7, 9}})
//	det, _ := matrix.Determinant(m) // -8
//
// See example_test.go for more.
package matrix

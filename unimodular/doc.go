// SPDX-License-Identifier: MIT

// Package unimodular derives unimodular matrices from integer matrices via
// their Smith-like diagonal form.
//
// Alpha(m) diagonalizes a copy of m as rowT·m·colT = D and returns
// rowT⁻¹·colT⁻¹. Both transforms are products of swaps and integer shears,
// so the result has determinant ±1 for integer input.
//
// LastRowMinorGCD computes the minors obtained by deleting the last row and
// each column in turn, and their gcd. For a matrix whose last row is a
// placeholder this tells whether the other rows extend to a unimodular
// matrix (gcd 1).
package unimodular

// SPDX-License-Identifier: MIT

// Package numeric provides the exact arithmetic foundation of powergeom:
// arbitrary-precision rationals and the two immutable vector kinds built on
// top of them.
//
// 🚀 What is inside?
//
//	Rational       : reduced fraction with positive denominator (math/big backed)
//	IntVector      : fixed-length vector of *big.Int, canonical Reduced() form
//	FractionVector : fixed-length vector of Rational
//	Vector[V, S]   : small capability interface both vectors implement
//
// ✨ Guarantees:
//   - Every value is immutable. Operations return fresh values and never
//     alias the operands' big.Int / big.Rat storage.
//   - Length mismatches return ErrDimensionMismatch instead of panicking.
//   - Division by zero returns ErrDivisionByZero.
//
// ⚙️ Usage:
//
//	a := numeric.NewIntVector(6, -4, 2)
//	fmt.Println(a.Reduced()) // (3, -2, 1)
//
//	h, _ := numeric.NewRational(1, 2)
//	fv := numeric.NewFractionVector(h, numeric.RationalFromInt(3))
//	fmt.Println(fv.ToIntVector()) // (1, 6)
//
// Ordering:
//
//	CompareIntVectors puts longer vectors first, then compares components
//	lexicographically. Every sorted container in the module uses it.
package numeric

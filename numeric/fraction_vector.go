// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strings"
)

// FractionVector is an immutable fixed-length vector of Rational values.
type FractionVector struct {
	c []Rational
}

// NewFractionVector builds a vector from the given components.
func NewFractionVector(values ...Rational) FractionVector {
	c := make([]Rational, len(values))
	copy(c, values)

	return FractionVector{c: c}
}

// FractionVectorFromInts builds an integral FractionVector from literals.
func FractionVectorFromInts(values ...int64) FractionVector {
	c := make([]Rational, len(values))
	for i, v := range values {
		c[i] = RationalFromInt(v)
	}

	return FractionVector{c: c}
}

// ParseFractionVector parses each field with ParseRational.
func ParseFractionVector(fields ...string) (FractionVector, error) {
	c := make([]Rational, len(fields))
	for i, f := range fields {
		r, err := ParseRational(f)
		if err != nil {
			return FractionVector{}, err
		}
		c[i] = r
	}

	return FractionVector{c: c}, nil
}

// Dim returns the number of components.
func (v FractionVector) Dim() int { return len(v.c) }

// At returns component i.
func (v FractionVector) At(i int) Rational { return v.c[i] }

// Components returns a copy of the components.
func (v FractionVector) Components() []Rational {
	out := make([]Rational, len(v.c))
	copy(out, v.c)

	return out
}

// IsZero reports whether every component is zero.
func (v FractionVector) IsZero() bool {
	for _, x := range v.c {
		if !x.IsZero() {
			return false
		}
	}

	return true
}

// Equal reports component-wise equality.
func (v FractionVector) Equal(o FractionVector) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if !v.c[i].Equal(o.c[i]) {
			return false
		}
	}

	return true
}

// Add returns v + o.
func (v FractionVector) Add(o FractionVector) (FractionVector, error) {
	return v.zip(o, opAdd, Rational.Add)
}

// Sub returns v − o.
func (v FractionVector) Sub(o FractionVector) (FractionVector, error) {
	return v.zip(o, opSub, Rational.Sub)
}

// Mul returns the component-wise product.
func (v FractionVector) Mul(o FractionVector) (FractionVector, error) {
	return v.zip(o, opMul, Rational.Mul)
}

// Div returns the component-wise quotient, failing on any zero divisor.
func (v FractionVector) Div(o FractionVector) (FractionVector, error) {
	if len(v.c) != len(o.c) {
		return FractionVector{}, mismatchf(opDiv, len(v.c), len(o.c))
	}
	out := make([]Rational, len(v.c))
	for i := range v.c {
		q, err := v.c[i].Div(o.c[i])
		if err != nil {
			return FractionVector{}, err
		}
		out[i] = q
	}

	return FractionVector{c: out}, nil
}

// Dot returns Σ v_i·o_i.
func (v FractionVector) Dot(o FractionVector) (Rational, error) {
	if len(v.c) != len(o.c) {
		return Rational{}, mismatchf(opDot, len(v.c), len(o.c))
	}
	sum := new(big.Rat)
	tmp := new(big.Rat)
	for i := range v.c {
		sum.Add(sum, tmp.Mul(v.c[i].rat(), o.c[i].rat()))
	}

	return Rational{v: sum}, nil
}

// Negate returns −v.
func (v FractionVector) Negate() FractionVector {
	out := make([]Rational, len(v.c))
	for i, x := range v.c {
		out[i] = x.Neg()
	}

	return FractionVector{c: out}
}

// Scale returns k·v.
func (v FractionVector) Scale(k Rational) FractionVector {
	out := make([]Rational, len(v.c))
	for i, x := range v.c {
		out[i] = x.Mul(k)
	}

	return FractionVector{c: out}
}

// WithValueAt returns a copy of v with component i replaced by x.
func (v FractionVector) WithValueAt(i int, x Rational) (FractionVector, error) {
	if i < 0 || i >= len(v.c) {
		return FractionVector{}, numericErrorf(opWithValueAt, ErrIndexOutOfRange)
	}
	out := v.Components()
	out[i] = x

	return FractionVector{c: out}, nil
}

// ToIntVector clears denominators and reduces the result.
//
// The multiplier starts at 1 and is multiplied by each denominator it is not
// yet divisible by. That is not always the least common multiple (4 then 6
// gives 24), but the final gcd reduction makes the outcome identical.
func (v FractionVector) ToIntVector() IntVector {
	mult := big.NewInt(1)
	rem := new(big.Int)
	for _, x := range v.c {
		d := x.rat().Denom()
		if rem.Rem(mult, d).Sign() != 0 {
			mult.Mul(mult, d)
		}
	}
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		r := x.rat()
		k := new(big.Int).Quo(mult, r.Denom())
		out[i] = k.Mul(k, r.Num())
	}

	return IntVector{c: out}.Reduced()
}

// Key is a canonical string usable as a map key.
func (v FractionVector) Key() string {
	var sb strings.Builder
	for i, x := range v.c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(x.String())
	}

	return sb.String()
}

// String renders "(a, b/c, d)".
func (v FractionVector) String() string {
	return "(" + strings.ReplaceAll(v.Key(), ",", ", ") + ")"
}

func (v FractionVector) zip(o FractionVector, tag string, f func(Rational, Rational) Rational) (FractionVector, error) {
	if len(v.c) != len(o.c) {
		return FractionVector{}, mismatchf(tag, len(v.c), len(o.c))
	}
	out := make([]Rational, len(v.c))
	for i := range v.c {
		out[i] = f(v.c[i], o.c[i])
	}

	return FractionVector{c: out}, nil
}

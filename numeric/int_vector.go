// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strings"
)

// IntVector is an immutable fixed-length vector of arbitrary-precision
// integers. The zero value is the empty (0-dimensional) vector.
type IntVector struct {
	c []*big.Int
}

// NewIntVector builds a vector from int64 literals.
func NewIntVector(values ...int64) IntVector {
	c := make([]*big.Int, len(values))
	for i, v := range values {
		c[i] = big.NewInt(v)
	}

	return IntVector{c: c}
}

// IntVectorOf builds a vector from big integers. The values are copied.
func IntVectorOf(values ...*big.Int) IntVector {
	c := make([]*big.Int, len(values))
	for i, v := range values {
		c[i] = new(big.Int).Set(v)
	}

	return IntVector{c: c}
}

// ZeroIntVector returns the zero vector of the given dimension.
func ZeroIntVector(dim int) IntVector {
	c := make([]*big.Int, dim)
	for i := range c {
		c[i] = new(big.Int)
	}

	return IntVector{c: c}
}

// UnitIntVector returns e_i in dimension dim. It panics when i is outside [0, dim).
func UnitIntVector(dim, i int) IntVector {
	v := ZeroIntVector(dim)
	v.c[i].SetInt64(1)

	return v
}

// UnitIntVectors returns the standard basis e_0..e_{dim-1}.
func UnitIntVectors(dim int) []IntVector {
	out := make([]IntVector, dim)
	for i := 0; i < dim; i++ {
		out[i] = UnitIntVector(dim, i)
	}

	return out
}

// Dim returns the number of components.
func (v IntVector) Dim() int { return len(v.c) }

// At returns a copy of component i. It panics when i is out of range,
// the same way slice indexing does.
func (v IntVector) At(i int) *big.Int { return new(big.Int).Set(v.c[i]) }

// Components returns copies of all components.
func (v IntVector) Components() []*big.Int {
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// IsZero reports whether every component is zero. The empty vector is zero.
func (v IntVector) IsZero() bool { return AreZeros(v.c...) }

// Equal reports component-wise equality of same-length vectors.
func (v IntVector) Equal(o IntVector) bool { return CompareIntVectors(v, o) == 0 }

// Add returns v + o.
func (v IntVector) Add(o IntVector) (IntVector, error) {
	if len(v.c) != len(o.c) {
		return IntVector{}, mismatchf(opAdd, len(v.c), len(o.c))
	}
	out := make([]*big.Int, len(v.c))
	for i := range v.c {
		out[i] = new(big.Int).Add(v.c[i], o.c[i])
	}

	return IntVector{c: out}, nil
}

// Sub returns v − o.
func (v IntVector) Sub(o IntVector) (IntVector, error) {
	if len(v.c) != len(o.c) {
		return IntVector{}, mismatchf(opSub, len(v.c), len(o.c))
	}
	out := make([]*big.Int, len(v.c))
	for i := range v.c {
		out[i] = new(big.Int).Sub(v.c[i], o.c[i])
	}

	return IntVector{c: out}, nil
}

// Mul returns the component-wise product.
func (v IntVector) Mul(o IntVector) (IntVector, error) {
	if len(v.c) != len(o.c) {
		return IntVector{}, mismatchf(opMul, len(v.c), len(o.c))
	}
	out := make([]*big.Int, len(v.c))
	for i := range v.c {
		out[i] = new(big.Int).Mul(v.c[i], o.c[i])
	}

	return IntVector{c: out}, nil
}

// Div divides component-wise through fractions and converts the quotient
// back with FractionVector.ToIntVector, so the result is reduced.
func (v IntVector) Div(o IntVector) (IntVector, error) {
	q, err := v.ToFractionVector().Div(o.ToFractionVector())
	if err != nil {
		return IntVector{}, err
	}

	return q.ToIntVector(), nil
}

// Dot returns Σ v_i·o_i.
func (v IntVector) Dot(o IntVector) (*big.Int, error) {
	if len(v.c) != len(o.c) {
		return nil, mismatchf(opDot, len(v.c), len(o.c))
	}

	return dotInts(v.c, o.c), nil
}

// Negate returns −v.
func (v IntVector) Negate() IntVector {
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Int).Neg(x)
	}

	return IntVector{c: out}
}

// Scale returns k·v.
func (v IntVector) Scale(k *big.Int) IntVector {
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Int).Mul(x, k)
	}

	return IntVector{c: out}
}

// WithValueAt returns a copy of v with component i replaced by x.
func (v IntVector) WithValueAt(i int, x *big.Int) (IntVector, error) {
	if i < 0 || i >= len(v.c) {
		return IntVector{}, numericErrorf(opWithValueAt, ErrIndexOutOfRange)
	}
	out := v.Components()
	out[i] = new(big.Int).Set(x)

	return IntVector{c: out}, nil
}

// GCD returns the non-negative gcd of all |components| (0 for the zero vector).
func (v IntVector) GCD() *big.Int { return GCDOf(v.c...) }

// Reduced divides every component by GCD. Vectors whose gcd is 0 or 1 are
// returned unchanged, so Reduced is idempotent.
func (v IntVector) Reduced() IntVector {
	g := v.GCD()
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return v
	}
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Int).Quo(x, g)
	}

	return IntVector{c: out}
}

// ToFractionVector lifts every component to a Rational.
func (v IntVector) ToFractionVector() FractionVector {
	out := make([]Rational, len(v.c))
	for i, x := range v.c {
		out[i] = RationalFromBig(x)
	}

	return FractionVector{c: out}
}

// Key is a canonical string usable as a map key. Equal vectors share a key.
func (v IntVector) Key() string {
	var sb strings.Builder
	for i, x := range v.c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(x.String())
	}

	return sb.String()
}

// String renders "(a, b, c)".
func (v IntVector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

// CompareIntVectors orders longer vectors first, then compares components
// lexicographically. It returns -1, 0 or +1.
func CompareIntVectors(a, b IntVector) int {
	if len(a.c) != len(b.c) {
		if len(a.c) > len(b.c) {
			return -1
		}
		return 1
	}
	for i := range a.c {
		if c := a.c[i].Cmp(b.c[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Combine returns Reduced(a·ka − b·kb), the elimination step shared by the
// cone solver's basis and ray updates.
func Combine(a IntVector, ka *big.Int, b IntVector, kb *big.Int) (IntVector, error) {
	if len(a.c) != len(b.c) {
		return IntVector{}, mismatchf(opCombine, len(a.c), len(b.c))
	}
	out := make([]*big.Int, len(a.c))
	tmp := new(big.Int)
	for i := range a.c {
		out[i] = new(big.Int).Mul(a.c[i], ka)
		out[i].Sub(out[i], tmp.Mul(b.c[i], kb))
	}

	return IntVector{c: out}.Reduced(), nil
}

func dotInts(a, b []*big.Int) *big.Int {
	sum, tmp := new(big.Int), new(big.Int)
	for i := range a {
		sum.Add(sum, tmp.Mul(a[i], b[i]))
	}

	return sum
}

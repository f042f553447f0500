// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strings"
)

// Rational is an immutable exact fraction. The zero value is 0.
// The backing big.Rat is always normalized by math/big: reduced with a
// positive denominator.
type Rational struct {
	v *big.Rat
}

var (
	// Zero is the additive identity.
	Zero = Rational{}
	// One is the multiplicative identity.
	One = RationalFromInt(1)

	ratZero = new(big.Rat)
	ratHalf = big.NewRat(1, 2)
)

// NewRational builds num/den. It fails with ErrDivisionByZero when den == 0.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, numericErrorf(opDiv, ErrDivisionByZero)
	}

	return Rational{v: big.NewRat(num, den)}, nil
}

// MustRational is NewRational for literals in tests and examples. It panics
// on a zero denominator.
func MustRational(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// RationalFromInt returns n/1.
func RationalFromInt(n int64) Rational {
	return Rational{v: new(big.Rat).SetInt64(n)}
}

// RationalFromBig returns n/1. n is copied.
func RationalFromBig(n *big.Int) Rational {
	return Rational{v: new(big.Rat).SetInt(n)}
}

// RationalFromBigFrac returns num/den, failing with ErrDivisionByZero when den is zero.
func RationalFromBigFrac(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, numericErrorf(opDiv, ErrDivisionByZero)
	}

	return Rational{v: new(big.Rat).SetFrac(num, den)}, nil
}

// ParseRational accepts "n", "-n", "n/d" with optional surrounding spaces.
// Decimal forms such as "0.25" are accepted as well and read exactly.
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, numericErrorf(opParse, ErrSyntax)
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, okN := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okD := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okN || !okD {
			return Rational{}, numericErrorf(opParse, ErrSyntax)
		}
		if d.Sign() == 0 {
			return Rational{}, numericErrorf(opParse, ErrDivisionByZero)
		}

		return Rational{v: new(big.Rat).SetFrac(n, d)}, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, numericErrorf(opParse, ErrSyntax)
	}

	return Rational{v: r}, nil
}

// rat returns the backing value, mapping the zero Rational onto 0.
// Callers must not mutate the result.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return ratZero
	}

	return r.v
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), o.rat())}
}

// Sub returns r − o.
func (r Rational) Sub(o Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.rat(), o.rat())}
}

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), o.rat())}
}

// Div returns r / o or ErrDivisionByZero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, numericErrorf(opDiv, ErrDivisionByZero)
	}

	return Rational{v: new(big.Rat).Quo(r.rat(), o.rat())}, nil
}

// Neg returns −r.
func (r Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(r.rat())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{v: new(big.Rat).Abs(r.rat())}
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int { return r.rat().Cmp(o.rat()) }

// Equal reports whether r == o.
func (r Rational) Equal(o Rational) bool { return r.Cmp(o) == 0 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int { return r.rat().Sign() }

// IsZero reports r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.rat().IsInt() }

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.rat().Num()) }

// Den returns a copy of the (positive) denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.rat().Denom()) }

// Floor returns the greatest integer ≤ r.
// big.Int.Div is Euclidean, which equals floor division for the positive
// denominator math/big maintains.
func (r Rational) Floor() *big.Int {
	x := r.rat()

	return new(big.Int).Div(x.Num(), x.Denom())
}

// Round rounds half up: floor(r + 1/2). So 5/2 → 3 and -5/2 → -2.
func (r Rational) Round() *big.Int {
	return Rational{v: new(big.Rat).Add(r.rat(), ratHalf)}.Floor()
}

// Int returns r as an integer or ErrNotInteger.
func (r Rational) Int() (*big.Int, error) {
	if !r.IsInteger() {
		return nil, numericErrorf(opInt, ErrNotInteger)
	}

	return r.Num(), nil
}

// Rat returns a copy of r as a *big.Rat.
func (r Rational) Rat() *big.Rat { return new(big.Rat).Set(r.rat()) }

// String renders "n" for integers and "n/d" otherwise.
func (r Rational) String() string { return r.rat().RatString() }

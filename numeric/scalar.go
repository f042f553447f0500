// SPDX-License-Identifier: MIT

package numeric

import "math/big"

var bigOne = big.NewInt(1)

// GCD returns gcd(|a|, |b|), which is 0 only when both are 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)

	return x.GCD(nil, nil, x, y)
}

// GCDOf folds GCD over values. An empty list yields 0.
func GCDOf(values ...*big.Int) *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, v := range values {
		if g.Cmp(bigOne) == 0 {
			break
		}
		g.GCD(nil, nil, g, abs.Abs(v))
	}

	return g
}

// AreZeros reports whether every value is zero.
func AreZeros(values ...*big.Int) bool {
	for _, v := range values {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

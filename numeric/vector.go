// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Vector is the capability shared by IntVector and FractionVector.
// V is the concrete vector type and S its scalar type.
type Vector[V any, S any] interface {
	Dim() int
	IsZero() bool
	Key() string
	Negate() V
	Scale(S) V
	Add(V) (V, error)
	Sub(V) (V, error)
	Dot(V) (S, error)
}

// Compile-time conformance.
var (
	_ Vector[IntVector, *big.Int]      = IntVector{}
	_ Vector[FractionVector, Rational] = FractionVector{}
)

// Keyed is the subset of Vector that Dedup needs.
type Keyed interface {
	IsZero() bool
	Key() string
}

// Dedup removes repeated vectors keeping the first occurrence of each, and
// drops zero vectors when dropZero is set. Input order is otherwise kept.
func Dedup[V Keyed](vs []V, dropZero bool) []V {
	seen := linkedhashmap.New()
	for _, v := range vs {
		if dropZero && v.IsZero() {
			continue
		}
		k := v.Key()
		if _, ok := seen.Get(k); ok {
			continue
		}
		seen.Put(k, v)
	}
	out := make([]V, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(V))
	}

	return out
}

// DotAll returns rows[i]·v for every row, stopping at the first mismatch.
func DotAll[V Vector[V, S], S any](v V, rows []V) ([]S, error) {
	out := make([]S, len(rows))
	for i, r := range rows {
		d, err := r.Dot(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

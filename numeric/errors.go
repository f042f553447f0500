// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two vectors of different length were combined.
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrDivisionByZero is returned by any division whose divisor is zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNotInteger is returned when an integer is required but the value has a
	// non-unit denominator. Values are never truncated silently.
	ErrNotInteger = errors.New("numeric: value is not an integer")

	// ErrIndexOutOfRange is returned by copy-on-write setters given a bad index.
	ErrIndexOutOfRange = errors.New("numeric: index out of range")

	// ErrSyntax is returned by ParseRational for malformed input.
	ErrSyntax = errors.New("numeric: invalid rational syntax")
)

// Operation tags used in wrapped errors.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opDot         = "Dot"
	opWithValueAt = "WithValueAt"
	opCombine     = "Combine"
	opParse       = "ParseRational"
	opInt         = "Int"
)

// numericErrorf wraps err with an operation tag, keeping errors.Is working.
func numericErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatchf reports a length mismatch with both dimensions attached.
func mismatchf(tag string, a, b int) error {
	return fmt.Errorf("%s: %d vs %d: %w", tag, a, b, ErrDimensionMismatch)
}

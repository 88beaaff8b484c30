// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package evaluate

import (
	"math/bits"

	"github.com/toeirei/coresolver/core/quad"
)

// Op is one of the three puzzle operators.
type Op int

const (
	OpSub Op = iota
	OpMul
	OpDiv
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Apply runs the operator on a and b.
func (o Op) Apply(a, b quad.Value) quad.Value {
	switch o {
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	case OpDiv:
		return Div(a, b)
	default:
		return quad.None()
	}
}

// Sub is a - b, absent when either side is absent or the result would be
// negative.
func Sub(a, b quad.Value) quad.Value {
	x, okA := a.Get()
	y, okB := b.Get()
	if !okA || !okB || x < y {
		return quad.None()
	}
	return quad.Some(x - y)
}

// Mul is a * b, absent when either side is absent or the product does not
// fit in an Operand.
func Mul(a, b quad.Value) quad.Value {
	x, okA := a.Get()
	y, okB := b.Get()
	if !okA || !okB {
		return quad.None()
	}
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		return quad.None()
	}
	return quad.Some(lo)
}

// Div is a / b, present only when b is non-zero and divides a exactly.
func Div(a, b quad.Value) quad.Value {
	x, okA := a.Get()
	y, okB := b.Get()
	if !okA || !okB || y == 0 || x%y != 0 {
		return quad.None()
	}
	return quad.Some(x / y)
}

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package quad

import (
	"strconv"
	"strings"
)

// Operand is a single non-negative puzzle number.
type Operand = uint64

// Quad is an ordered group of exactly four operands. Order matters: position 0
// is the starting accumulator of every evaluation pattern.
type Quad [4]Operand

// Sum returns the sum of all four operands.
func (q Quad) Sum() Operand {
	return q[0] + q[1] + q[2] + q[3]
}

// Concat joins the decimal forms of the operands without separators.
func (q Quad) Concat() string {
	var b strings.Builder
	for _, v := range q {
		b.WriteString(strconv.FormatUint(v, 10))
	}
	return b.String()
}

// String renders the quad as "[a b c d]".
func (q Quad) String() string {
	parts := make([]string, len(q))
	for i, v := range q {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Value is an optional Operand. The zero Value is absent, which keeps
// "no result" distinct from a present 0.
type Value struct {
	v  Operand
	ok bool
}

// Some wraps a present operand.
func Some(v Operand) Value { return Value{v: v, ok: true} }

// None returns an absent value.
func None() Value { return Value{} }

// Get returns the wrapped operand and whether it is present.
func (v Value) Get() (Operand, bool) { return v.v, v.ok }

// Present reports whether v holds an operand.
func (v Value) Present() bool { return v.ok }

// String returns the decimal operand or "none".
func (v Value) String() string {
	if !v.ok {
		return "none"
	}
	return strconv.FormatUint(v.v, 10)
}

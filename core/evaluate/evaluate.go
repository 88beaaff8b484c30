// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package evaluate

import (
	"fmt"

	"github.com/toeirei/coresolver/core/quad"
)

// Step applies Op to the accumulator and the operand at index Operand.
type Step struct {
	Op      Op
	Operand int
}

// Pattern is a fixed sequence of three steps. Each operator and each of the
// operands 1..3 appears exactly once.
type Pattern [3]Step

// Patterns covers the six operator orders. Where a division sits next to a
// multiplication the operands are arranged so the multiplication runs first:
// (a * c) / b equals (a / b) * c whenever the latter is whole, and the former
// also succeeds when only the final result is whole.
var Patterns = [6]Pattern{
	// sub, mul, div
	{{OpSub, 1}, {OpMul, 2}, {OpDiv, 3}},
	// sub, div, mul: ((a - b) / c) * d evaluated as ((a - b) * d) / c
	{{OpSub, 1}, {OpMul, 3}, {OpDiv, 2}},
	// mul, sub, div
	{{OpMul, 1}, {OpSub, 2}, {OpDiv, 3}},
	// mul, div, sub
	{{OpMul, 1}, {OpDiv, 2}, {OpSub, 3}},
	// div, sub, mul
	{{OpDiv, 1}, {OpSub, 2}, {OpMul, 3}},
	// div, mul, sub: ((a / b) * c) - d evaluated as ((a * c) / b) - d
	{{OpMul, 2}, {OpDiv, 1}, {OpSub, 3}},
}

// Outcome is the result of running one pattern.
type Outcome struct {
	Pattern Pattern
	Value   quad.Value
	// FailedStep is the index of the first step with no result, or -1.
	FailedStep int
}

// Run evaluates p left to right starting from q[0].
func (p Pattern) Run(q quad.Quad) Outcome {
	acc := quad.Some(q[0])
	for i, s := range p {
		acc = s.Op.Apply(acc, quad.Some(q[s.Operand]))
		if !acc.Present() {
			return Outcome{Pattern: p, Value: acc, FailedStep: i}
		}
	}
	return Outcome{Pattern: p, Value: acc, FailedStep: -1}
}

// Render writes the pattern as a fully parenthesised expression over q.
func (p Pattern) Render(q quad.Quad) string {
	expr := fmt.Sprint(q[0])
	for i, s := range p {
		if i > 0 {
			expr = "(" + expr + ")"
		}
		expr = fmt.Sprintf("%s %s %d", expr, s.Op, q[s.Operand])
	}
	return expr
}

// EvaluateAll runs every pattern in table order.
func EvaluateAll(q quad.Quad) []Outcome {
	out := make([]Outcome, 0, len(Patterns))
	for _, p := range Patterns {
		out = append(out, p.Run(q))
	}
	return out
}

// Evaluate returns the smallest value any pattern produces for q, or an
// absent value when every pattern fails.
func Evaluate(q quad.Quad) quad.Value {
	best := quad.None()
	for _, p := range Patterns {
		v, ok := p.Run(q).Value.Get()
		if !ok {
			continue
		}
		if cur, have := best.Get(); !have || v < cur {
			best = quad.Some(v)
		}
	}
	return best
}

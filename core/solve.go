// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"

	"github.com/toeirei/coresolver/core/evaluate"
	"github.com/toeirei/coresolver/core/input"
	"github.com/toeirei/coresolver/core/letters"
	"github.com/toeirei/coresolver/core/partition"
	"github.com/toeirei/coresolver/core/quad"
	"github.com/toeirei/coresolver/internal/logging"
)

// ErrUnrecognized is returned for lines that are not a number, four
// comma-separated numbers or a four-letter word.
var ErrUnrecognized = errors.New("unrecognized input style")

// Answer is the outcome of solving one input line.
type Answer struct {
	// Kind is the classified shape of the input.
	Kind input.Kind
	// Source is the trimmed input line.
	Source string
	// Word is the folded word for Kind == input.Word.
	Word string
	// Number is the source number for Kind == input.Number.
	Number quad.Operand
	// Quad holds the four operands that were evaluated.
	Quad quad.Quad
	// Core is the smallest valid result, absent when no pattern succeeded.
	Core quad.Value
}

// Letter returns the letter form of the core when it lies in 1..26.
func (a Answer) Letter() (rune, bool) {
	c, ok := a.Core.Get()
	if !ok {
		return 0, false
	}
	return letters.Letter(c)
}

// Solve classifies line and computes its core.
func Solve(line string) (Answer, error) {
	in := input.Classify(line)
	a := Answer{Kind: in.Kind, Source: in.Raw}
	logging.Debugf("classified %q as %s", in.Raw, in.Kind)

	switch in.Kind {
	case input.Number:
		q, err := partition.Split(in.Number)
		if err != nil {
			return a, err
		}
		logging.Debugf("split %d into %v", in.Number, q)
		a.Number, a.Quad = in.Number, q
	case input.Quad:
		a.Quad = in.Quad
	case input.Word:
		q, err := letters.WordQuad(in.Word)
		if err != nil {
			return a, err
		}
		a.Word, a.Quad = in.Word, q
	default:
		return a, fmt.Errorf("%q: %w", in.Raw, ErrUnrecognized)
	}

	a.Core = evaluate.Evaluate(a.Quad)
	logging.Debugf("core of %v is %s", a.Quad, a.Core)
	return a, nil
}

// SolveQuad computes the core of q directly.
func SolveQuad(q quad.Quad) Answer {
	return Answer{Kind: input.Quad, Source: q.String(), Quad: q, Core: evaluate.Evaluate(q)}
}

// Explain solves line and also returns the outcome of every pattern.
func Explain(line string) (Answer, []evaluate.Outcome, error) {
	a, err := Solve(line)
	if err != nil {
		return a, nil, err
	}
	return a, evaluate.EvaluateAll(a.Quad), nil
}

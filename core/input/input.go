// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input decides what shape a line of user input has before it is
// handed to the solver.
package input

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toeirei/coresolver/core/letters"
	"github.com/toeirei/coresolver/core/quad"
)

// Kind is the shape of an input line.
type Kind int

const (
	Unknown Kind = iota
	Number
	Quad
	Word
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Quad:
		return "quad"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Line is a classified input line. Only the field matching Kind is set.
type Line struct {
	Kind   Kind
	Raw    string
	Number quad.Operand
	Quad   quad.Quad
	// Word is the folded, upper-case form of the input.
	Word string
}

// Classify trims line and checks, in order: a single non-negative integer,
// exactly four letters, exactly four comma-separated non-negative integers.
// Integers may carry one leading '+'.
func Classify(line string) Line {
	raw := strings.TrimSpace(line)
	out := Line{Kind: Unknown, Raw: raw}
	if raw == "" {
		return out
	}

	if n, err := parseOperand(raw); err == nil {
		out.Kind, out.Number = Number, n
		return out
	}

	if isWord(raw) {
		out.Kind, out.Word = Word, letters.Fold(raw)
		return out
	}

	if q, ok := parseQuad(raw); ok {
		out.Kind, out.Quad = Quad, q
		return out
	}

	return out
}

// parseOperand parses a base-10 operand. A single leading '+' is allowed.
func parseOperand(s string) (quad.Operand, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
}

func isWord(s string) bool {
	if utf8.RuneCountInString(s) != 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func parseQuad(s string) (quad.Quad, bool) {
	var q quad.Quad
	fields := strings.Split(s, ",")
	if len(fields) != len(q) {
		return q, false
	}
	for i, f := range fields {
		n, err := parseOperand(strings.TrimSpace(f))
		if err != nil {
			return quad.Quad{}, false
		}
		q[i] = n
	}
	return q, true
}

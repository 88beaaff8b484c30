// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package partition

import (
	"errors"
	"fmt"
	"math"

	"github.com/toeirei/coresolver/core/quad"
)

// MinSource is the smallest number that can be split into four groups.
const MinSource quad.Operand = 1000

// ErrTooFewDigits is returned by Split for numbers below MinSource.
var ErrTooFewDigits = errors.New("number must have at least 4 digits")

// Layout assigns a digit count to each of the four groups.
type Layout [4]int

// Split cuts n into the balanced four-group split with the lowest sum. When
// several layouts share the lowest sum the first one in Layouts order wins.
func Split(n quad.Operand) (quad.Quad, error) {
	if n < MinSource {
		return quad.Quad{}, fmt.Errorf("split %d: %w", n, ErrTooFewDigits)
	}

	best, _ := pick(n, Layouts(Digits(n)))
	return best, nil
}

// Candidate is one layout together with the quad it produces.
type Candidate struct {
	Layout Layout
	Quad   quad.Quad
	Chosen bool
}

// Candidates lists every layout tried by Split, in order, marking the one Split
// returns.
func Candidates(n quad.Operand) ([]Candidate, error) {
	if n < MinSource {
		return nil, fmt.Errorf("split %d: %w", n, ErrTooFewDigits)
	}

	layouts := Layouts(Digits(n))
	_, idx := pick(n, layouts)
	out := make([]Candidate, len(layouts))
	for i, l := range layouts {
		out[i] = Candidate{Layout: l, Quad: Apply(n, l), Chosen: i == idx}
	}
	return out, nil
}

func pick(n quad.Operand, layouts []Layout) (quad.Quad, int) {
	var best quad.Quad
	bestIdx := -1
	lowest := quad.Operand(math.MaxUint64)
	for i, l := range layouts {
		q := Apply(n, l)
		// strict less-than keeps the earliest layout on ties
		if s := q.Sum(); bestIdx < 0 || s < lowest {
			lowest, best, bestIdx = s, q, i
		}
	}
	return best, bestIdx
}

// Layouts returns the distinct arrangements of balanced group lengths for a
// number with d digits, in lexicographic order. It returns nil when d < 4.
func Layouts(d int) []Layout {
	if d < 4 {
		return nil
	}

	small := d / 4
	large := small + 1
	var base Layout
	switch d % 4 {
	case 0:
		base = Layout{small, small, small, small}
	case 1:
		base = Layout{small, small, small, large}
	case 2:
		base = Layout{small, small, large, large}
	case 3:
		base = Layout{small, large, large, large}
	default:
		panic(fmt.Sprintf("partition: %d large groups for %d digits", d%4, d))
	}

	// base is sorted ascending, so stepping through next permutations visits
	// each distinct arrangement exactly once.
	out := []Layout{base}
	for l := base; nextPermutation(&l); {
		out = append(out, l)
	}
	return out
}

// nextPermutation advances l to its lexicographic successor and reports
// whether one existed. Equal elements are never swapped, so repeated lengths
// do not produce duplicate layouts.
func nextPermutation(l *Layout) bool {
	i := len(l) - 2
	for i >= 0 && l[i] >= l[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(l) - 1
	for l[j] <= l[i] {
		j--
	}
	l[i], l[j] = l[j], l[i]
	for a, b := i+1, len(l)-1; a < b; a, b = a+1, b-1 {
		l[a], l[b] = l[b], l[a]
	}
	return true
}

// Apply walks the digits of n from the most significant one and consumes
// l[i] digits into group i.
func Apply(n quad.Operand, l Layout) quad.Quad {
	var q quad.Quad
	pos := 1
	for i, width := range l {
		for j := 0; j < width; j++ {
			q[i] = q[i]*10 + Digit(n, pos)
			pos++
		}
	}
	return q
}

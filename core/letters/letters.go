// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package letters

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/toeirei/coresolver/core/quad"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotAWord is returned when a word does not fold to exactly four letters A-Z.
var ErrNotAWord = errors.New("not a four-letter word")

// Letter returns the letter for k, where 1 is 'A' and 26 is 'Z'.
func Letter(k quad.Operand) (rune, bool) {
	if k < 1 || k > 26 {
		return 0, false
	}
	return rune('A' + k - 1), true
}

// Number returns the position of r in the alphabet, ignoring case.
func Number(r rune) (quad.Operand, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return quad.Operand(r-'A') + 1, true
	case r >= 'a' && r <= 'z':
		return quad.Operand(r-'a') + 1, true
	default:
		return 0, false
	}
}

var upper = cases.Upper(language.Und)

// Fold upper-cases word and strips combining marks, so "café" becomes "CAFE".
func Fold(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, upper.String(word))
	if err != nil {
		return upper.String(word)
	}
	return out
}

// WordQuad folds word and maps each of its four letters to 1..26.
func WordQuad(word string) (quad.Quad, error) {
	folded := []rune(Fold(word))
	if len(folded) != 4 {
		return quad.Quad{}, fmt.Errorf("%q: %w", word, ErrNotAWord)
	}
	var q quad.Quad
	for i, r := range folded {
		n, ok := Number(r)
		if !ok {
			return quad.Quad{}, fmt.Errorf("%q: letter %q: %w", word, r, ErrNotAWord)
		}
		q[i] = n
	}
	return q, nil
}

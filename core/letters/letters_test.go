// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package letters

import (
	"errors"
	"testing"

	"github.com/toeirei/coresolver/core/quad"
)

func TestLetterRoundTrip(t *testing.T) {
	for k := quad.Operand(1); k <= 26; k++ {
		r, ok := Letter(k)
		if !ok {
			t.Fatalf("Letter(%d) not found", k)
		}
		back, ok := Number(r)
		if !ok || back != k {
			t.Fatalf("Number(Letter(%d)) = %d, %v", k, back, ok)
		}
	}
	if r, _ := Letter(1); r != 'A' {
		t.Fatalf("Letter(1) = %q", r)
	}
	if r, _ := Letter(26); r != 'Z' {
		t.Fatalf("Letter(26) = %q", r)
	}
}

func TestLetter_OutOfRange(t *testing.T) {
	for _, k := range []quad.Operand{0, 27, 100, 1 << 40} {
		if r, ok := Letter(k); ok {
			t.Fatalf("Letter(%d) = %q, want none", k, r)
		}
	}
}

func TestNumber(t *testing.T) {
	if n, ok := Number('h'); !ok || n != 8 {
		t.Fatalf("Number('h') = %d, %v", n, ok)
	}
	if _, ok := Number('1'); ok {
		t.Fatalf("Number('1') should fail")
	}
	if _, ok := Number('É'); ok {
		t.Fatalf("Number('É') should fail before folding")
	}
}

func TestFold(t *testing.T) {
	tests := map[string]string{
		"hand": "HAND",
		"café": "CAFE",
		"Noël": "NOEL",
		"WORD": "WORD",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWordQuad(t *testing.T) {
	q, err := WordQuad("hand")
	if err != nil {
		t.Fatalf("WordQuad: %v", err)
	}
	if want := (quad.Quad{8, 1, 14, 4}); q != want {
		t.Fatalf("WordQuad(hand) = %v, want %v", q, want)
	}

	q, err = WordQuad("café")
	if err != nil {
		t.Fatalf("WordQuad(café): %v", err)
	}
	if want := (quad.Quad{3, 1, 6, 5}); q != want {
		t.Fatalf("WordQuad(café) = %v, want %v", q, want)
	}

	for _, bad := range []string{"abc", "abcde", "ab1d", "Ωmeg"} {
		if _, err := WordQuad(bad); !errors.Is(err, ErrNotAWord) {
			t.Fatalf("WordQuad(%q) error = %v, want ErrNotAWord", bad, err)
		}
	}
}

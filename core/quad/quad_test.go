// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package quad

import "testing"

func TestQuadFormatting(t *testing.T) {
	q := Quad{8, 6, 45, 5}
	if got := q.String(); got != "[8 6 45 5]" {
		t.Fatalf("String() = %q", got)
	}
	if got := q.Concat(); got != "86455" {
		t.Fatalf("Concat() = %q", got)
	}
	if got := q.Sum(); got != 64 {
		t.Fatalf("Sum() = %d", got)
	}
}

func TestValue_ZeroIsNotAbsent(t *testing.T) {
	zero := Some(0)
	if !zero.Present() {
		t.Fatalf("Some(0) must be present")
	}
	if v, ok := zero.Get(); !ok || v != 0 {
		t.Fatalf("Some(0).Get() = %d, %v", v, ok)
	}
	if None().Present() {
		t.Fatalf("None() must be absent")
	}
	var unset Value
	if unset.Present() {
		t.Fatalf("zero Value must be absent")
	}
	if got := None().String(); got != "none" {
		t.Fatalf("None().String() = %q", got)
	}
	if got := Some(18).String(); got != "18" {
		t.Fatalf("Some(18).String() = %q", got)
	}
}

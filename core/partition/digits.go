// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package partition

import (
	"fmt"

	"github.com/toeirei/coresolver/core/quad"
)

// pow10[i] == 10^i for every power that fits in an Operand.
var pow10 = func() [20]quad.Operand {
	var p [20]quad.Operand
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// Digits returns the number of decimal digits in n. Zero has one digit.
func Digits(n quad.Operand) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Digit returns the k-th decimal digit of n, counting from 1 at the most
// significant digit. Every position of 0, and every position past the last
// digit, is 0. Digit panics if k < 1.
func Digit(n quad.Operand, k int) quad.Operand {
	if k < 1 {
		panic(fmt.Sprintf("partition: digit position %d, positions start at 1", k))
	}
	if n == 0 {
		return 0
	}
	offset := Digits(n) - k
	if offset < 0 {
		return 0
	}
	return (n / pow10[offset]) % 10
}

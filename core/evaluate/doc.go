// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package evaluate finds the core of four operands: the smallest whole number
// reachable by applying subtraction, multiplication and division exactly once
// each, using every operand exactly once, with operand 0 as the starting
// value. Intermediate results must stay whole and non-negative; a step that
// would leave that domain makes its whole pattern invalid.
package evaluate

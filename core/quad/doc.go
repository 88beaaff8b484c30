// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package quad holds the small value types shared by the partitioner and the
// evaluator: a single operand, an ordered group of four operands, and an
// optional operand used to carry "no valid result" through a calculation.
package quad

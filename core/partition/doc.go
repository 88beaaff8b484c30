// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package partition splits a number of four or more digits into four
// contiguous digit groups. Group lengths are balanced (they differ by at most
// one) and, among every distinct arrangement of those lengths, the split with
// the smallest total is chosen. Concatenating the groups always reproduces the
// source digits.
package partition

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package uiadapters contains thin helpers that turn `core` results into the
// localized text shown by both the CLI and the TUI, so the two front ends
// print identical lines.
package uiadapters

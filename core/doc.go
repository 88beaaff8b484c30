// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
// Package core contains deterministic, UI-agnostic facades used by the CLI and
// TUI. It classifies an input line, routes it through the partitioner and the
// evaluator in `core/partition` and `core/evaluate`, and returns an Answer.
// Presentation stays in the UI packages.
package core

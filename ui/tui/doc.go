// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the full-screen solver. Presentation and input
// handling live here; solving is delegated to `core` and answer text to
// `uiadapters`.
package tui

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Coresolver using Cobra.
// It wires configuration, logging and i18n, and provides commands that delegate
// to the deterministic `core` facades. CLI code should remain thin and leave
// solving to `core` and answer formatting to `uiadapters`.
package cli

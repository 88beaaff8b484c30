// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Command coresolver computes the core of a word, a number or four numbers.
package main

import (
	"os"

	"github.com/toeirei/coresolver/internal/logging"
	"github.com/toeirei/coresolver/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the solver screen.
type Options struct {
	// History is the number of answers kept on screen.
	History int
	// ShowLetters appends the letter form of cores between 1 and 26.
	ShowLetters bool
	// Copy places text on the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// Run starts the solver and blocks until the user quits.
func Run(opts Options) error {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	_, err := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
	).Run()
	return err
}

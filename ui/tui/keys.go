// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Solve key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Solve: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "solve"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Solve, k.Copy, k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

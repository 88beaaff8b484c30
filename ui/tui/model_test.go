// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/coresolver/internal/i18n"
)

func submit(m *model, line string) {
	m.input.SetValue(line)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_SolveAddsNewestFirst(t *testing.T) {
	i18n.Init("en")
	m := newModel(Options{History: 10, ShowLetters: true})

	submit(m, "hand")
	submit(m, "8,6,45,5")

	if len(m.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.entries))
	}
	if m.entries[0].text != "[8 6 45 5] -> 18 -> R" {
		t.Fatalf("unexpected newest entry: %q", m.entries[0].text)
	}
	if m.entries[1].text != "HAND -> [8 1 14 4] -> 2 -> B" {
		t.Fatalf("unexpected older entry: %q", m.entries[1].text)
	}
	if m.input.Value() != "" {
		t.Fatalf("input should be cleared after solving, got %q", m.input.Value())
	}
}

func TestModel_EntryKinds(t *testing.T) {
	i18n.Init("en")
	m := newModel(Options{History: 10})

	submit(m, "nonsense here")
	if !m.entries[0].failed {
		t.Fatalf("unrecognized input should be marked failed")
	}
	submit(m, "1,2,3,4")
	if m.entries[0].failed || m.entries[0].hasCore {
		t.Fatalf("no-core answer should be neither failed nor successful: %+v", m.entries[0])
	}
	submit(m, "3614")
	if !m.entries[0].hasCore {
		t.Fatalf("expected a core for 3614: %+v", m.entries[0])
	}
}

func TestModel_BlankInputIgnored(t *testing.T) {
	m := newModel(Options{History: 3})
	submit(m, "   ")
	if len(m.entries) != 0 {
		t.Fatalf("blank input should not be solved")
	}
}

func TestModel_HistoryBounded(t *testing.T) {
	m := newModel(Options{History: 2})
	for _, in := range []string{"hand", "word", "core", "cube"} {
		submit(m, in)
	}
	if len(m.entries) != 2 {
		t.Fatalf("expected history of 2, got %d", len(m.entries))
	}
	if !strings.HasPrefix(m.entries[0].text, "CUBE") || !strings.HasPrefix(m.entries[1].text, "CORE") {
		t.Fatalf("unexpected history: %+v", m.entries)
	}
}

func TestModel_CopyLast(t *testing.T) {
	i18n.Init("en")
	var copied string
	m := newModel(Options{History: 5, ShowLetters: true, Copy: func(s string) error {
		copied = s
		return nil
	}})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "nothing solved yet" {
		t.Fatalf("unexpected status with empty history: %q", m.status)
	}

	submit(m, "hand")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "HAND -> [8 1 14 4] -> 2 -> B" {
		t.Fatalf("unexpected clipboard text: %q", copied)
	}
	if !strings.HasPrefix(m.status, "copied ") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestModel_CopyFailure(t *testing.T) {
	i18n.Init("en")
	m := newModel(Options{History: 5, Copy: func(string) error { return errors.New("no display") }})
	submit(m, "hand")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "clipboard unavailable: no display" {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(Options{History: 5})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_View(t *testing.T) {
	i18n.Init("en")
	m := newModel(Options{History: 5})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	submit(m, "hand")

	view := m.View()
	for _, want := range []string{"Core Solver", "HAND -> [8 1 14 4] -> 2", "solve"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view is missing %q:\n%s", want, view)
		}
	}
}

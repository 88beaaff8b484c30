// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/coresolver/core"
	"github.com/toeirei/coresolver/internal/i18n"
	"github.com/toeirei/coresolver/uiadapters"
)

type entry struct {
	text    string
	failed  bool
	hasCore bool
}

type model struct {
	opts    Options
	keys    keyMap
	help    help.Model
	input   textinput.Model
	entries []entry // newest first
	status  string
	width   int
}

func newModel(opts Options) *model {
	if opts.History < 1 {
		opts.History = 1
	}
	in := textinput.New()
	in.Placeholder = i18n.T("tui.placeholder")
	in.Prompt = "> "
	in.Focus()

	return &model{
		opts:  opts,
		keys:  newKeyMap(),
		help:  help.New(),
		input: in,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.copyLast()
			return m, nil
		case key.Matches(msg, m.keys.Solve):
			m.solve()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) solve() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return
	}
	a, err := core.Solve(line)
	e := entry{
		text:    uiadapters.FormatAnswer(a, err, m.opts.ShowLetters),
		failed:  err != nil,
		hasCore: err == nil && a.Core.Present(),
	}
	m.entries = append([]entry{e}, m.entries...)
	if len(m.entries) > m.opts.History {
		m.entries = m.entries[:m.opts.History]
	}
	m.input.Reset()
	m.status = ""
}

func (m *model) copyLast() {
	if len(m.entries) == 0 {
		m.status = i18n.T("tui.empty_history")
		return
	}
	text := m.entries[0].text
	if m.opts.Copy == nil {
		return
	}
	if err := m.opts.Copy(text); err != nil {
		m.status = i18n.T("tui.copy_failed", err)
		return
	}
	m.status = i18n.T("tui.copied", text)
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		switch {
		case e.failed:
			lines = append(lines, errorStyle.Render(e.text))
		case e.hasCore:
			lines = append(lines, successStyle.Render(e.text))
		default:
			lines = append(lines, subtleStyle.Render(e.text))
		}
	}
	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(historyStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return docStyle.Render(b.String())
}

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"errors"
	"strconv"
	"strings"

	"github.com/toeirei/coresolver/core"
	"github.com/toeirei/coresolver/core/evaluate"
	"github.com/toeirei/coresolver/core/input"
	"github.com/toeirei/coresolver/core/letters"
	"github.com/toeirei/coresolver/core/partition"
	"github.com/toeirei/coresolver/internal/i18n"
)

const arrow = " -> "

// FormatAnswer renders the result of core.Solve as a single line, e.g.
// "HAND -> [8 1 14 4] -> 2 -> B". A non-nil err is rendered as its localized
// message instead.
func FormatAnswer(a core.Answer, err error, showLetters bool) string {
	if err != nil {
		return FormatError(a, err)
	}

	var parts []string
	switch a.Kind {
	case input.Word:
		parts = append(parts, a.Word)
	case input.Number:
		parts = append(parts, strconv.FormatUint(a.Number, 10))
	}
	parts = append(parts, a.Quad.String())

	if !a.Core.Present() {
		parts = append(parts, i18n.T("repl.no_core"))
		return strings.Join(parts, arrow)
	}
	parts = append(parts, a.Core.String())
	if r, ok := a.Letter(); ok && showLetters {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, arrow)
}

// FormatError maps solver errors to their localized message.
func FormatError(a core.Answer, err error) string {
	switch {
	case errors.Is(err, core.ErrUnrecognized):
		return i18n.T("repl.unrecognized")
	case errors.Is(err, partition.ErrTooFewDigits):
		n, _ := strconv.ParseUint(a.Source, 10, 64)
		return i18n.T("repl.too_few_digits", n)
	case errors.Is(err, letters.ErrNotAWord):
		return i18n.T("repl.not_a_word", a.Source)
	default:
		return err.Error()
	}
}

// FormatOutcome renders one evaluation pattern for `explain`; idx is 0-based.
func FormatOutcome(idx int, a core.Answer, o evaluate.Outcome) string {
	expr := o.Pattern.Render(a.Quad)
	if o.Value.Present() {
		return i18n.T("explain.pattern_ok", idx+1, expr, o.Value.String())
	}
	return i18n.T("explain.pattern_failed", idx+1, expr, o.FailedStep+1)
}

// FormatCandidate renders one partition layout for `split`.
func FormatCandidate(c partition.Candidate) string {
	widths := make([]string, len(c.Layout))
	for i, w := range c.Layout {
		widths[i] = strconv.Itoa(w)
	}
	line := "[" + strings.Join(widths, " ") + "] " + c.Quad.String() + " " + i18n.T("split.sum", c.Quad.Sum())
	if c.Chosen {
		line += " <- " + i18n.T("split.chosen")
	}
	return line
}

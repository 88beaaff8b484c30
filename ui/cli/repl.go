// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toeirei/coresolver/core"
	"github.com/toeirei/coresolver/internal/i18n"
	"github.com/toeirei/coresolver/internal/logging"
	"github.com/toeirei/coresolver/uiadapters"
	"golang.org/x/term"
)

type replOptions struct {
	Prompt      string
	ShowLetters bool
	// Interactive enables the prompt; it is off when stdin is a pipe.
	Interactive bool
}

// isTerminal reports whether r is a terminal file.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runREPL solves one input per line until in is exhausted.
func runREPL(in io.Reader, out io.Writer, opts replOptions) error {
	scanner := bufio.NewScanner(in)
	for {
		if opts.Interactive {
			fmt.Fprint(out, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		a, err := core.Solve(line)
		if err != nil {
			logging.Debugf("solve %q: %v", line, err)
		}
		fmt.Fprintln(out, uiadapters.FormatAnswer(a, err, opts.ShowLetters))
	}
	if err := scanner.Err(); err != nil {
		logging.Warnf("reading input: %v", err)
	}
	fmt.Fprintln(out, i18n.T("repl.done"))
	return nil
}

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/coresolver/internal/i18n"
)

// executeCommand runs a fresh root command with args and stdin, isolated from
// any real configuration, and returns its stdout.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if wd, err := os.Getwd(); err != nil {
		t.Fatal(err)
	} else if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	} else {
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
	t.Cleanup(func() { i18n.Init("en") })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_ReadsLinesUntilEOF(t *testing.T) {
	in := strings.NewReader("hand\n86455\n\n1000,200,11,2\n1,2,3,4\nfoo bar\n123\n")
	out, err := executeCommand(t, in)
	require.NoError(t, err)

	want := strings.Join([]string{
		"HAND -> [8 1 14 4] -> 2 -> B",
		"86455 -> [8 6 45 5] -> 18 -> R",
		"[1000 200 11 2] -> 53",
		"[1 2 3 4] -> no valid cores possible",
		"Unrecognized input style",
		"123: number must have at least 4 digits",
		"done, exiting.",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRoot_NoPromptWhenPiped(t *testing.T) {
	out, err := executeCommand(t, strings.NewReader("hand\n"), "--prompt", "core? ")
	require.NoError(t, err)
	assert.NotContains(t, out, "core? ")
}

func TestRoot_GermanAndNoLetters(t *testing.T) {
	out, err := executeCommand(t, strings.NewReader("hand\n1,2,3,4\n"), "--language", "de", "--show-letters=false")
	require.NoError(t, err)
	assert.Equal(t, "HAND -> [8 1 14 4] -> 2\n[1 2 3 4] -> kein gültiger Kern möglich\nfertig, beende.\n", out)
}

func TestRoot_InvalidConfigFails(t *testing.T) {
	_, err := executeCommand(t, strings.NewReader(""), "--language", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestRunREPL_PromptWhenInteractive(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	err := runREPL(strings.NewReader("3614\n"), &out, replOptions{Prompt: "> ", ShowLetters: true, Interactive: true})
	require.NoError(t, err)
	assert.Equal(t, "> 3614 -> [3 6 1 4] -> 14 -> N\n> done, exiting.\n", out.String())
}

func TestSolveCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "solve", "hand", "8,6,45,5")
	require.NoError(t, err)
	assert.Equal(t, "HAND -> [8 1 14 4] -> 2 -> B\n[8 6 45 5] -> 18 -> R\n", out)

	out, err = executeCommand(t, nil, "solve", "hand", "wh?t")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 inputs could not be solved", err.Error())
	assert.Contains(t, out, "Unrecognized input style")

	out, err = executeCommand(t, nil, "solve", "123", "+1234", "what")
	require.Error(t, err)
	assert.Equal(t, "1 of 3 inputs could not be solved", err.Error())
	assert.Equal(t, "123: number must have at least 4 digits\n1234 -> [1 2 3 4] -> no valid cores possible\nWHAT -> [23 8 1 20] -> 164\n", out)
}

func TestSplitCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "split", "86455")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[1 1 2 1] [8 6 45 5] sum 64 <- chosen", lines[1])

	_, err = executeCommand(t, nil, "split", "999")
	require.Error(t, err)
	assert.Equal(t, "999: number must have at least 4 digits", err.Error())

	_, err = executeCommand(t, nil, "split", "abc")
	require.Error(t, err)
}

func TestExplainCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "explain", "8,6,45,5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "[8 6 45 5] -> 18 -> R", lines[0])
	assert.Equal(t, "1. ((8 - 6) * 45) / 5 = 18", lines[1])
	assert.Equal(t, "6. ((8 * 45) / 6) - 5 = 55", lines[6])

	_, err = executeCommand(t, nil, "explain", "??")
	require.Error(t, err)
	assert.Equal(t, "Unrecognized input style", err.Error())
}

func TestConfigShowAndInit(t *testing.T) {
	out, err := executeCommand(t, nil, "config", "show", "--language", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "language: de")
	assert.Contains(t, out, "history: 50")

	home := t.TempDir()
	var buf bytes.Buffer
	t.Setenv("XDG_CONFIG_HOME", home)
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"config", "init", "--prompt", ">> "})
	require.NoError(t, root.Execute())

	path := filepath.Join(home, "coresolver", "coresolver.yaml")
	assert.Equal(t, "Wrote config to "+path+"\n", buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">> ")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version: ")
	assert.Contains(t, out, "commit: ")
}

// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/toeirei/coresolver/core"
	"github.com/toeirei/coresolver/core/partition"
	"github.com/toeirei/coresolver/internal/config"
	"github.com/toeirei/coresolver/internal/i18n"
	"github.com/toeirei/coresolver/ui/tui"
	"github.com/toeirei/coresolver/uiadapters"
)

// newSolveCmd solves each argument as its own input line.
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <input>...",
		Short: "Print the core of each input",
		Long: `Solves every argument as if it had been typed into the interactive solver.
An argument can be a four-letter word, a number of at least four digits, or
four comma-separated numbers such as 8,6,45,5.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, arg := range args {
				a, err := core.Solve(arg)
				if err != nil {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), uiadapters.FormatAnswer(a, err, appConfig.ShowLetters))
			}
			if failed > 0 {
				return errors.New(i18n.T("solve.error_failed", failed, len(args)))
			}
			return nil
		},
	}
}

// newSplitCmd shows every balanced digit layout of a number.
func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <number>",
		Short: "Show how a number is split into four digit groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("split %q: %w", args[0], err)
			}
			cands, err := partition.Candidates(n)
			if err != nil {
				return errors.New(uiadapters.FormatError(core.Answer{Source: args[0]}, err))
			}
			for _, c := range cands {
				fmt.Fprintln(cmd.OutOrStdout(), uiadapters.FormatCandidate(c))
			}
			return nil
		},
	}
}

// newExplainCmd prints the outcome of all six evaluation patterns.
func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <input>",
		Short: "Show every evaluation order tried for an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, outcomes, err := core.Explain(args[0])
			out := cmd.OutOrStdout()
			if err != nil {
				return errors.New(uiadapters.FormatError(a, err))
			}
			fmt.Fprintln(out, uiadapters.FormatAnswer(a, nil, appConfig.ShowLetters))
			for i, o := range outcomes {
				fmt.Fprintln(out, uiadapters.FormatOutcome(i, a, o))
			}
			return nil
		},
	}
}

// newTUICmd starts the full-screen solver.
func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive full-screen solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				History:     appConfig.TUI.History,
				ShowLetters: appConfig.ShowLetters,
			})
		},
	}
	cmd.Flags().Int("history", config.Defaults()["tui.history"].(int), "Number of answers kept on screen")
	return cmd
}

// newConfigCmd groups configuration helpers.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Render(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

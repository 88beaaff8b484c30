// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Coresolver using the
// Cobra library. It defines the root command, which runs the line-oriented
// solver, registers the subcommands and wires configuration, logging and
// i18n before any of them run.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/coresolver/buildvars"
	"github.com/toeirei/coresolver/internal/config"
	"github.com/toeirei/coresolver/internal/i18n"
	"github.com/toeirei/coresolver/internal/logging"
)

var version = buildvars.VersionOrDefault("dev") // this will be set by the linker
var gitCommit = orDev(buildvars.Commit)         // set at build time with the short commit SHA
var buildDate = buildvars.Date                  // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

func orDev(s string) string {
	if s == "" {
		return "dev"
	}
	return s
}

// setupDefaultServices loads configuration and initializes logging and i18n.
// It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, used, err := config.Load(cmd, optionalConfigPath)
	if err != nil {
		return errors.New(i18n.T("config.error_load", err))
	}
	appConfig = cfg

	level := appConfig.LogLevel
	if verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}
	if used != "" {
		logging.Debugf("using config file %s", used)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coresolver",
		Short: "Coresolver finds the core of a word, a number or four numbers.",
		Long: `Coresolver reduces four numbers to a single "core": the smallest whole
result of combining them with one subtraction, one multiplication and one
division, in the fixed evaluation orders of the puzzle.

Input may be a four-letter word (A=1 .. Z=26), a number of at least four
digits (split into four balanced digit groups), or four comma-separated
numbers.

Running without a subcommand reads one input per line from stdin.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), replOptions{
				Prompt:      appConfig.Prompt,
				ShowLetters: appConfig.ShowLetters,
				Interactive: isTerminal(cmd.InOrStdin()),
			})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	defaults := config.Defaults()
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `Message language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", defaults["log_level"].(string), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("prompt", defaults["prompt"].(string), "Prompt shown by the interactive solver")
	cmd.PersistentFlags().Bool("show-letters", defaults["show_letters"].(bool), "Append the letter form of cores between 1 and 26")

	cmd.AddCommand(
		newSolveCmd(),
		newSplitCmd(),
		newExplainCmd(),
		newTUICmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/coresolver" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

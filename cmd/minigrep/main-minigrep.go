// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/outrigdev/minigrep/pkg/base"
	"github.com/outrigdev/minigrep/pkg/config"
	"github.com/outrigdev/minigrep/pkg/grep"
	"github.com/outrigdev/minigrep/pkg/logutil"
	"github.com/spf13/cobra"
)

// MinigrepVersion is the current version of minigrep
var MinigrepVersion = base.MinigrepVersion

// MinigrepBuildTime is the build timestamp of minigrep
var MinigrepBuildTime = ""

type rootFlags struct {
	ignoreCase  bool
	mode        string
	lineNumbers bool
	color       bool
	quiet       bool
	envFile     string
	verbose     bool
}

func (f *rootFlags) options() []config.Option {
	opts := []config.Option{config.WithMode(f.mode)}
	if f.ignoreCase {
		opts = append(opts, config.WithIgnoreCase())
	}
	if f.lineNumbers {
		opts = append(opts, config.WithLineNumbers())
	}
	if f.color {
		opts = append(opts, config.WithColor())
	}
	if f.quiet {
		opts = append(opts, config.WithQuiet())
	}
	return opts
}

// runSearch builds the configuration from the program path plus the positional args and runs it
func runSearch(cmd *cobra.Command, flags *rootFlags, args []string) error {
	// argument errors are reported before the env file is touched
	if len(args) < 2 {
		return config.ErrNotEnoughArgs
	}
	lookupEnv, err := config.EnvFileLookup(flags.envFile)
	if err != nil {
		return err
	}
	levelName, _ := lookupEnv(base.LogLevelEnvName)
	if err := logutil.Init(cmd.ErrOrStderr(), levelName, flags.verbose); err != nil {
		return fmt.Errorf("invalid %s: %w", base.LogLevelEnvName, err)
	}
	if val, ok := lookupEnv(base.CaseInsensitiveEnvName); ok && looksFalse(val) {
		logutil.LogfOnce("caseinsensitive-value", "%s=%q still enables case-insensitive search, unset it to match case", base.CaseInsensitiveEnvName, val)
	}

	argv := append([]string{cmd.Root().Name()}, args...)
	cfg, err := config.Build(argv, lookupEnv, flags.options()...)
	if err != nil {
		return err
	}
	logutil.Logger().WithField("query", cfg.Query).Debugf("searching %s (searchtype=%s)", cfg.FileName, cfg.SearchType())
	return grep.Run(cmd.Context(), cfg, cmd.OutOrStdout())
}

func versionString() string {
	if MinigrepBuildTime != "" {
		return MinigrepVersion + "+" + MinigrepBuildTime
	}
	return MinigrepVersion + "+dev"
}

func looksFalse(val string) bool {
	switch strings.ToLower(val) {
	case "0", "false", "no", "off":
		return true
	}
	return false
}

func makeRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `Print the lines of a file that contain a query.
The file contents are printed first, followed by every matching line in order.
Set CASE_INSENSITIVE (to any value) or pass -i to ignore case.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, args)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "Ignore case (same as setting CASE_INSENSITIVE)")
	rootCmd.Flags().StringVar(&flags.mode, "mode", "exact", "Search mode: exact or fzf")
	rootCmd.Flags().BoolVarP(&flags.lineNumbers, "line-number", "n", false, "Prefix matching lines with their line number")
	rootCmd.Flags().BoolVar(&flags.color, "color", false, "Highlight the query in matching lines")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Do not print the file contents before the matches")
	rootCmd.Flags().StringVar(&flags.envFile, "env-file", "", "Read variables from this dotenv file (\"auto\": nearest .env)")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output to stderr")

	// no subcommands: any query, including "help" or "version", is searched for
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	return rootCmd
}

func main() {
	rootCmd := makeRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Problem: %v\n", err)
		os.Exit(1)
	}
}

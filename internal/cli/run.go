// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Package cli builds the generator commands and maps their failures to the
// exit codes and diagnostics a build system expects.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Run executes cmd with args and returns the process exit code. Diagnostics
// go to stderr; the document goes to stdout unless --output is set.
func Run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	executed, err := cmd.ExecuteContextC(context.Background())
	if err == nil {
		return ExitOK
	}
	if executed == nil {
		executed = cmd
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %s\n\n", usageErr.Message)
		fmt.Fprint(stderr, executed.UsageString())
		return ExitUsage
	}
	fmt.Fprintf(stderr, "%s: %v\n", executed.CommandPath(), err)
	return ExitCode(err)
}

// NewSuite returns a single command exposing one subcommand per supported
// export format.
func NewSuite(name string, subcommands ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{
		Use:   name + " <command> [flags] <symbol-file>",
		Short: "Generate linker export files from a symbol list",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Message: fmt.Sprintf("unknown command %q for %q", args[0], name)}
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return &UsageError{Message: "missing command"}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(subcommands...)
	return root
}

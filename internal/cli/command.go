// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ManuGH/symgen/internal/linkdoc"
	xglog "github.com/ManuGH/symgen/internal/log"
	"github.com/ManuGH/symgen/internal/symbols"
	"github.com/ManuGH/symgen/internal/version"
)

const stdoutName = "<stdout>"

type options struct {
	output   string
	logLevel string
}

// NewCommand returns a generator command that renders the symbol list named
// by its single argument in the given format.
func NewCommand(name string, format linkdoc.Format) *cobra.Command {
	opts := &options{}
	short, long := describe(format)

	cmd := &cobra.Command{
		Use:     name + " [flags] <symbol-file>",
		Short:   short,
		Long:    long,
		Example: fmt.Sprintf("  %s libnice.sym > libnice.%s\n  %s -o libnice.%s libnice.sym", name, format, name, format),
		Version: version.String(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Message: "missing <symbol-file> argument"}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := xglog.ValidateLevel(opts.logLevel); err != nil {
				return &UsageError{Message: err.Error()}
			}
			logger := xglog.New(xglog.Config{
				Level:   opts.logLevel,
				Output:  cmd.ErrOrStderr(),
				Service: name,
			}).With().Str(xglog.FieldCommand, cmd.CommandPath()).Logger()
			if len(args) > 1 {
				logger.Warn().Strs("ignored", args[1:]).Msg("extra arguments ignored")
			}
			ctx := xglog.ContextWithLogger(cmd.Context(), logger)
			return generate(ctx, format, args[0], opts.output, cmd.OutOrStdout())
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the document to this file instead of stdout (replaced atomically)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level for diagnostics on stderr (default from LOG_LEVEL, else warn)")
	return cmd
}

func describe(format linkdoc.Format) (short, long string) {
	switch format {
	case linkdoc.FormatDef:
		return "Generate a module-definition (.def) file from a symbol list",
			"Reads a symbol list, one name per line, and writes a Windows module-definition\n" +
				"document with an EXPORTS entry for every line, in input order."
	case linkdoc.FormatMap:
		return "Generate a linker version script from a symbol list",
			"Reads a symbol list, one name per line, and writes a version script that marks\n" +
				"every listed symbol global and hides everything else (local: *)."
	default:
		return fmt.Sprintf("Generate a %s export file from a symbol list", format), ""
	}
}

// generate loads the symbol list completely before writing anything, so a
// read failure never produces a partial document.
func generate(ctx context.Context, format linkdoc.Format, input, output string, stdout io.Writer) error {
	logger := xglog.WithComponentFromContext(ctx, "generate")

	syms, err := symbols.Load(input)
	if err != nil {
		return &IOError{Op: "read symbols", Path: input, Err: err}
	}
	logger.Debug().
		Str(xglog.FieldPath, input).
		Int(xglog.FieldCount, len(syms)).
		Msg("symbol list loaded")

	dest := output
	if dest == "" {
		dest = stdoutName
		err = format.Write(stdout, syms)
	} else {
		err = writeDocument(ctx, output, format, syms)
	}
	if err != nil {
		return &IOError{Op: "write output", Path: dest, Err: err}
	}

	logDone(logger, format, dest, len(syms))
	return nil
}

func logDone(logger zerolog.Logger, format linkdoc.Format, dest string, n int) {
	logger.Debug().
		Str(xglog.FieldFormat, string(format)).
		Str(xglog.FieldOutput, dest).
		Int(xglog.FieldCount, n).
		Msg("document written")
}

// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Command symgen bundles the export file generators as subcommands:
//
//	symgen def libnice.sym > libnice.def
//	symgen map libnice.sym > libnice.map
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ManuGH/symgen/internal/cli"
	"github.com/ManuGH/symgen/internal/linkdoc"
)

func main() {
	os.Exit(cli.Run(newRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCmd() *cobra.Command {
	subcommands := make([]*cobra.Command, 0, len(linkdoc.Formats()))
	for _, f := range linkdoc.Formats() {
		subcommands = append(subcommands, cli.NewCommand(string(f), f))
	}
	return cli.NewSuite("symgen", subcommands...)
}

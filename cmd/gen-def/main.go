// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Command gen-def writes a Windows module-definition file for a symbol list.
//
// Usage:
//
//	gen-def libnice.sym > libnice.def
//	gen-def -o libnice.def libnice.sym
//
// Exit codes:
//   - 0: document written
//   - 1: symbol file unreadable or output unwritable
//   - 2: usage error (missing symbol file argument)
package main

import (
	"os"

	"github.com/ManuGH/symgen/internal/cli"
	"github.com/ManuGH/symgen/internal/linkdoc"
)

func main() {
	os.Exit(cli.Run(cli.NewCommand("gen-def", linkdoc.FormatDef), os.Args[1:], os.Stdout, os.Stderr))
}

// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Command gen-map writes a linker version script for a symbol list.
//
// Usage:
//
//	gen-map libnice.sym > libnice.map
//	gen-map -o libnice.map libnice.sym
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
	os.Exit(cli.Run(cli.NewCommand("gen-map", linkdoc.FormatMap), os.Args[1:], os.Stdout, os.Stderr))
}

// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Package linkdoc renders symbol lists into the export documents consumed by
// linkers: Windows module-definition files and GNU-style version scripts.
package linkdoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ManuGH/symgen/internal/symbols"
)

// Format names a supported export document type.
type Format string

const (
	// FormatDef is a Windows module-definition (.def) document.
	FormatDef Format = "def"
	// FormatMap is a linker version script (.map).
	FormatMap Format = "map"
)

// Formats returns the supported formats in a stable order.
func Formats() []Format {
	return []Format{FormatDef, FormatMap}
}

// Write renders syms in format f.
func (f Format) Write(w io.Writer, syms symbols.List) error {
	switch f {
	case FormatDef:
		return WriteDef(w, syms)
	case FormatMap:
		return WriteVersionScript(w, syms)
	default:
		return fmt.Errorf("unknown export format %q", string(f))
	}
}

// WriteDef writes an EXPORTS section listing every symbol indented by four spaces.
func WriteDef(w io.Writer, syms symbols.List) error {
	buf := &bytes.Buffer{}
	buf.WriteString("EXPORTS\n")
	for _, s := range syms {
		buf.WriteString("    " + s + "\n")
	}
	_, err := io.Copy(w, buf)
	return err
}

// WriteVersionScript writes a version script that keeps syms global and
// hides everything else.
func WriteVersionScript(w io.Writer, syms symbols.List) error {
	buf := &bytes.Buffer{}
	buf.WriteString("{\nglobal:\n")
	for _, s := range syms {
		buf.WriteString("\t" + s + ";\n")
	}
	buf.WriteString("local:\n\t*;\n};\n")
	_, err := io.Copy(w, buf)
	return err
}

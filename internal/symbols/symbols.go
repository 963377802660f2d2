// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Package symbols reads symbol-list files: plain text, one exported symbol
// name per line.
package symbols

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// List is an ordered list of symbol names as they appeared in the input.
// Duplicates and blank entries are kept.
type List []string

// Read returns one trimmed entry per input line. Lines end at "\n", "\r\n"
// or a lone "\r". Blank lines become empty entries; a trailing line break
// does not add one.
func Read(r io.Reader) (List, error) {
	var syms List
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(scanLines)
	for sc.Scan() {
		syms = append(syms, strings.TrimFunc(sc.Text(), isSpace))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan symbol list: %w", err)
	}
	return syms, nil
}

// scanLines is bufio.ScanLines with universal newlines.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		default:
			// need one more byte to tell "\r" from "\r\n"
			return 0, nil, nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// isSpace matches the characters stripped from symbol names: Unicode white
// space plus the ASCII file, group, record and unit separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Load reads the symbol list stored at path. Open failures are returned as
// *fs.PathError.
func Load(path string) (List, error) {
	// #nosec G304 -- CLI tool, path provided by user argument
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	syms, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return syms, nil
}

// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

//go:build windows

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/symgen/internal/linkdoc"
	xglog "github.com/ManuGH/symgen/internal/log"
	"github.com/ManuGH/symgen/internal/symbols"
)

// writeDocument writes the document to a temp file next to path and renames
// it into place.
// Note: Windows doesn't support atomic rename with fsync like Unix
func writeDocument(ctx context.Context, path string, format linkdoc.Format, syms symbols.List) error {
	logger := xglog.FromContext(ctx)

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".symgen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", format, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := format.Write(tmpFile, syms); err != nil {
		return fmt.Errorf("write %s data: %w", format, err)
	}

	// Close before rename (Windows requires this)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", format, err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s file: %w", format, err)
	}

	logger.Debug().Str(xglog.FieldPath, path).Msg("renamed document into place")
	return nil
}

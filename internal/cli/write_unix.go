// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

//go:build !windows

package cli

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/ManuGH/symgen/internal/linkdoc"
	xglog "github.com/ManuGH/symgen/internal/log"
	"github.com/ManuGH/symgen/internal/symbols"
)

// writeDocument replaces path with the rendered document using renameio:
// temp file in the same directory, fsync, atomic rename.
func writeDocument(ctx context.Context, path string, format linkdoc.Format, syms symbols.List) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending %s file: %w", format, err)
	}
	defer func() {
		// no-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending document")
		}
	}()

	if err := format.Write(pendingFile, syms); err != nil {
		return fmt.Errorf("write %s data: %w", format, err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

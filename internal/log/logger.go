// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

// Package log provides structured logging utilities.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps a normal build run silent apart from the document itself.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for configuring a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

// ValidateLevel reports whether name is a level zerolog understands. The
// empty name is valid and selects the fallback chain of ParseLevel.
func ValidateLevel(name string) error {
	if name == "" {
		return nil
	}
	parsed, err := zerolog.ParseLevel(name)
	if err != nil || parsed == zerolog.NoLevel {
		return fmt.Errorf("invalid log level %q (want trace, debug, info, warn, error, fatal, panic or disabled)", name)
	}
	return nil
}

// ParseLevel resolves a level name, falling back to LOG_LEVEL and then
// DefaultLevel when the name is empty or invalid.
func ParseLevel(name string) zerolog.Level {
	if name != "" {
		if parsed, err := zerolog.ParseLevel(name); err == nil && parsed != zerolog.NoLevel {
			return parsed
		}
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil && parsed != zerolog.NoLevel {
			return parsed
		}
	}
	return DefaultLevel
}

// New builds a logger from cfg. Output defaults to stderr because stdout
// carries the generated document.
func New(cfg Config) zerolog.Logger {
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	service := cfg.Service
	if service == "" {
		service = "symgen"
	}
	return zerolog.New(writer).Level(ParseLevel(cfg.Level)).With().
		Timestamp().
		Str(FieldService, service).
		Logger()
}

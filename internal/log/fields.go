// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldCommand   = "command"

	FieldPath   = "path"
	FieldOutput = "output"
	FieldFormat = "format"
	FieldCount  = "symbol_count"
)

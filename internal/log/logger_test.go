// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		env  string
		want zerolog.Level
	}{
		{name: "explicit", in: "debug", want: zerolog.DebugLevel},
		{name: "env fallback", env: "error", want: zerolog.ErrorLevel},
		{name: "explicit wins over env", in: "info", env: "error", want: zerolog.InfoLevel},
		{name: "invalid falls back to default", in: "loud", want: DefaultLevel},
		{name: "empty falls back to default", want: DefaultLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_WritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf, Service: "gen-def"})
	l.Debug().Str(FieldPath, "libnice.sym").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gen-def", entry[FieldService])
	assert.Equal(t, "libnice.sym", entry[FieldPath])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_DefaultLevelSuppressesDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New(Config{Output: &buf})
	l.Debug().Msg("hidden")
	l.Info().Msg("hidden too")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})
	ctx := ContextWithLogger(context.Background(), l)

	cl := WithComponentFromContext(ctx, "cli")
	cl.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cli", entry[FieldComponent])
}

func TestFromContext_FallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, DefaultLevel, l.GetLevel())

	//nolint:staticcheck // nil context is part of the contract
	require.NotNil(t, FromContext(nil))
}

func TestValidateLevel(t *testing.T) {
	for _, ok := range []string{"", "debug", "INFO", "warn", "disabled"} {
		assert.NoError(t, ValidateLevel(ok), ok)
	}
	for _, bad := range []string{"loud", "verbose"} {
		err := ValidateLevel(bad)
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), bad)
	}
}

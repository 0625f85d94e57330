// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		assert      func(t *testing.T, flags *flags)
		expectedErr error
	}{
		{
			name: "defaults",
			args: []string{},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, "dosboot.yaml", flags.ConfigPath)
				assert.Equal(t, "drives", flags.DrivesDir)
				assert.Equal(t, uint(437), flags.CodePage)
				assert.Equal(t, "en", flags.Language)
				assert.Empty(t, flags.Args)
			},
		},
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: flag.ErrHelp,
		},
		{
			name: "repeatable commands keep order",
			args: []string{"-c", "CLS", "-c", "VER"},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, commandList{"CLS", "VER"}, flags.Commands)
			},
		},
		{
			name: "variable assignments",
			args: []string{"-set", "path=Z:\\", "-set", "BLASTER=A220"},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, variableList{
					{Name: "path", Value: `Z:\`},
					{Name: "BLASTER", Value: "A220"},
				}, flags.Variables)
			},
		},
		{
			name: "empty variable value is allowed",
			args: []string{"-set", "path="},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, variableList{
					{Name: "path", Value: ""},
				}, flags.Variables)
			},
		},
		{
			name:        "variable without assignment",
			args:        []string{"-set", "path"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "variable without name",
			args:        []string{"-set", "=value"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown code page",
			args:        []string{"-code-page", "12345"},
			expectedErr: ErrUnknownCodePage,
		},
		{
			name:        "out of range code page",
			args:        []string{"-code-page", "65973"},
			expectedErr: ErrUnknownCodePage,
		},
		{
			name: "positional arguments",
			args: []string{"-exit", "one.iso", "SETUP.EXE"},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.True(t, flags.Exit)
				assert.Equal(t, []string{"one.iso", "SETUP.EXE"}, flags.Args)
			},
		},
		{
			name: "switches",
			args: []string{
				"-securemode",
				"-noautoexec",
				"-strict-variables",
				"-debug",
				"-code-page", "850",
			},
			assert: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.True(t, flags.Secure)
				assert.True(t, flags.NoAutoexec)
				assert.True(t, flags.StrictVariables)
				assert.True(t, flags.Debug)
				assert.Equal(t, uint(850), flags.CodePage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseArgs("dosboot", tt.args, io.Discard)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.assert(t, flags)
		})
	}
}

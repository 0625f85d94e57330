// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/dosboot/internal/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		fsys        fstest.MapFS
		expected    config.Config
		expectedErr error
	}{
		{
			name:     "missing file yields defaults",
			fsys:     fstest.MapFS{},
			expected: config.Default(),
		},
		{
			name: "complete file",
			fsys: fstest.MapFS{
				"dosboot.yaml": &fstest.MapFile{
					Data: []byte(`
automount: false
secure: true
exit: true
autoexec_section: join
startup_verbosity: quiet
autoexec: |
  @echo off
  DIR
`),
				},
			},
			expected: config.Config{
				Automount:        false,
				Secure:           true,
				Exit:             true,
				AutoexecSection:  config.SectionJoin,
				StartupVerbosity: config.VerbosityQuiet,
				Autoexec:         "@echo off\nDIR\n",
			},
		},
		{
			name: "partial file keeps defaults",
			fsys: fstest.MapFS{
				"dosboot.yaml": &fstest.MapFile{
					Data: []byte("secure: true\n"),
				},
			},
			expected: config.Config{
				Automount:        true,
				Secure:           true,
				AutoexecSection:  config.SectionOverwrite,
				StartupVerbosity: config.VerbosityAuto,
			},
		},
		{
			name: "invalid yaml",
			fsys: fstest.MapFS{
				"dosboot.yaml": &fstest.MapFile{
					Data: []byte("automount: [\n"),
				},
			},
			expectedErr: assert.AnError,
		},
		{
			name: "invalid section mode",
			fsys: fstest.MapFS{
				"dosboot.yaml": &fstest.MapFile{
					Data: []byte("autoexec_section: sideways\n"),
				},
			},
			expectedErr: config.ErrInvalidSectionMode,
		},
		{
			name: "invalid verbosity",
			fsys: fstest.MapFS{
				"dosboot.yaml": &fstest.MapFile{
					Data: []byte("startup_verbosity: shouting\n"),
				},
			},
			expectedErr: config.ErrInvalidVerbosity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := config.Load(tt.fsys, "dosboot.yaml")

			if tt.expectedErr != nil {
				if tt.expectedErr != assert.AnError { //nolint:err113
					require.ErrorIs(t, err, tt.expectedErr)
				} else {
					require.Error(t, err)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/dosboot/internal/cmd"
)

func TestRun(t *testing.T) {
	t.Setenv("DOSBOOT_ARGS", "")

	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "dosboot.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"autoexec: |\n  @echo off\n  DIR\n",
	), 0o644))

	drivesDir := filepath.Join(tmpDir, "drives")
	require.NoError(t, os.MkdirAll(filepath.Join(drivesDir, "c"), 0o755))

	outputPath := filepath.Join(tmpDir, "AUTOEXEC.BAT")
	dumpPath := filepath.Join(tmpDir, "drive.cpio")

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(
		[]string{
			"dosboot",
			"-config", configPath,
			"-drives", drivesDir,
			"-set", "BLASTER=A220 I7 D1",
			"-o", outputPath,
			"-dump", dumpPath,
		},
		cmd.IO{Stdout: &stdout, Stderr: &stderr},
	)
	require.Zero(t, exitCode, "stderr: %s", stderr.String())

	script, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	assert.Contains(t, string(script), "@ECHO OFF\r\n")
	assert.Contains(t, string(script), "@SET BLASTER=A220 I7 D1\r\n")
	assert.Contains(t, string(script), `@Z:\MOUNT.COM C "`)
	assert.Contains(t, string(script), "DIR\r\n")

	archive, err := os.Open(dumpPath)
	require.NoError(t, err)
	defer archive.Close()

	names := []string{}
	reader := cpio.NewReader(archive)

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		names = append(names, header.Name)
	}

	assert.Contains(t, names, "AUTOEXEC.BAT")
}

func TestRunVersion(t *testing.T) {
	t.Setenv("DOSBOOT_ARGS", "")

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(
		[]string{"dosboot", "-version"},
		cmd.IO{Stdout: &stdout, Stderr: &stderr},
	)

	require.Zero(t, exitCode)
	assert.Contains(t, stdout.String(), "Version:")
}

func TestRunHelp(t *testing.T) {
	t.Setenv("DOSBOOT_ARGS", "")

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(
		[]string{"dosboot", "-help"},
		cmd.IO{Stdout: &stdout, Stderr: &stderr},
	)

	assert.Zero(t, exitCode)
	assert.Contains(t, stderr.String(), "Usage")
}

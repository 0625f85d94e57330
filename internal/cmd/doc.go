// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for dosboot. It handles
// flag parsing, error handling, and output handling, and runs the one-time
// boot script composition sequence.
package cmd

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package autoexec

import "errors"

// ErrNotPrintableASCII is returned if a variable name or value contains
// characters outside of the printable ASCII range while strict variable
// validation is enabled.
var ErrNotPrintableASCII = errors.New("not printable ASCII")

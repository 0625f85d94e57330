// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package virtfs provides the virtual drive the emulator exposes to the
// guest system. It is an [io/fs.FS] holding files the guest can read
// without them existing on the host file system.
//
// Files come in two flavors. Synthesized files hold generated content, are
// registered once with [FS.Register] and can be updated in place with
// [FS.Update], like the generated boot script. Host-backed files added with
// [FS.Add] map a host file into the drive without copying it; opening the
// virtual file opens the host file underneath.
package virtfs

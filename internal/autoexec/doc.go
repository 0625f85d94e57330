// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package autoexec assembles the AUTOEXEC.BAT boot script the emulator
// exposes to the guest system. Lines are collected from three sources:
// commands generated before the user's script, the user's own [autoexec]
// config section, and commands generated after it. [Composer] merges them
// into one script with section banners, always in that order, no matter in
// which order the lines were added.
//
// The rendered script is kept in UTF-8. [Publisher] converts it into the
// guest's active code page and keeps the published byte image up to date
// when the guest switches code pages.
package autoexec

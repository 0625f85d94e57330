// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package autoexec

// Origin identifies the source a script line was added from. The rendered
// script groups lines by origin in the fixed order [OriginBefore],
// [OriginConfig], [OriginAfter], independent of the order lines were added
// in. Within a single origin the insertion order is kept.
type Origin int

const (
	// OriginBefore is for generated commands placed before the user's
	// script, like auto-mount commands.
	OriginBefore Origin = iota

	// OriginConfig is for the user's own lines from the [autoexec] config
	// section.
	OriginConfig

	// OriginAfter is for generated commands placed after the user's script,
	// like a final exit call.
	OriginAfter

	numOrigins
)

func (o Origin) String() string {
	switch o {
	case OriginBefore:
		return "generated-before"
	case OriginConfig:
		return "config"
	case OriginAfter:
		return "generated-after"
	default:
		return "invalid"
	}
}

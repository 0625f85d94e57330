// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package codepage converts UTF-8 text into the 8-bit code page encodings a
// DOS guest system works with.
package codepage

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Default is the code page assumed as long as the guest has not selected
// another one. Code page 437 is the original IBM PC character set.
const Default uint16 = 437

// ErrUnknownCodePage is returned for code page numbers without a known
// character table.
var ErrUnknownCodePage = errors.New("unknown code page")

var charmaps = map[uint16]*charmap.Charmap{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	855:  charmap.CodePage855,
	858:  charmap.CodePage858,
	860:  charmap.CodePage860,
	862:  charmap.CodePage862,
	863:  charmap.CodePage863,
	865:  charmap.CodePage865,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
}

// Known returns whether a character table for the given code page number is
// available.
func Known(codePage uint16) bool {
	_, exists := charmaps[codePage]
	return exists
}

// Transcode converts UTF-8 text into the encoding of the given code page.
// Runes without a mapping in the target code page are replaced with the
// encoding's substitute character, so the result always has one byte per
// input rune. It returns [ErrUnknownCodePage] for code pages without a
// known character table.
func Transcode(text string, codePage uint16) ([]byte, error) {
	table, exists := charmaps[codePage]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodePage, codePage)
	}

	encoder := encoding.ReplaceUnsupported(table.NewEncoder())

	data, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode for code page %d: %w", codePage, err)
	}

	return data, nil
}

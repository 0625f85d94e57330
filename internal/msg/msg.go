// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package msg provides the localizable messages used in generated guest
// facing output, like the section banners of the generated boot script.
// English texts are always present as fallback.
package msg

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Keys of all translatable messages.
const (
	AutoexecBannerGenerated = "autoexec.banner.generated"
	AutoexecBannerConfig    = "autoexec.banner.config-section"
)

var english = map[string]string{
	AutoexecBannerGenerated: "autogenerated",
	AutoexecBannerConfig:    "from [autoexec] section",
}

// Catalog is a localized message store for a single language.
type Catalog struct {
	builder *catalog.Builder
	printer *message.Printer
	tag     language.Tag
}

// NewCatalog creates a new [Catalog] for the given language, pre-filled with
// the English default texts.
func NewCatalog(tag language.Tag) (*Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	for key, text := range english {
		err := builder.SetString(language.English, key, text)
		if err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	msgCatalog := &Catalog{
		builder: builder,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		tag:     tag,
	}

	return msgCatalog, nil
}

// Set overrides the text for the given message key in the catalog's
// language.
func (c *Catalog) Set(key, text string) error {
	err := c.builder.SetString(c.tag, key, text)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	// The printer caches lookups, so it must be recreated.
	c.printer = message.NewPrinter(c.tag, message.Catalog(c.builder))

	return nil
}

// Get returns the text for the given message key.
func (c *Catalog) Get(key string) string {
	return c.printer.Sprintf(key)
}

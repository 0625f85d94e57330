// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package autoexec

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// DOS line ending, independent of the host convention.
const lineTerminator = "\r\n"

// Banner lines are DOS comments.
const commentPrefix = ":: "

const (
	defaultBannerGenerated = "autogenerated"
	defaultBannerConfig    = "from [autoexec] section"
)

type variable struct {
	name  string
	value string
}

// Composer collects the parts of the guest's AUTOEXEC.BAT and renders them
// into a single UTF-8 script.
//
// Create a new instance with [NewComposer]. Add generated commands with
// [Composer.AddCommandBefore] and [Composer.AddCommandAfter], and the user's
// own script with [Composer.LoadConfigSection]. Once all parts are present,
// render the script with [Composer.Render]. Rendering does not consume the
// state, so the same composer always renders the same output.
type Composer struct {
	echoOff   bool
	variables []variable
	lines     [numOrigins][]string

	strictVariables bool
	bannerGenerated string
	bannerConfig    string
}

// ComposerOption configures a [Composer].
type ComposerOption func(*Composer)

// WithStrictVariables makes [Composer.SetVariable] reject variable names and
// values that contain characters outside of the printable ASCII range.
// Without it such input is accepted silently.
func WithStrictVariables() ComposerOption {
	return func(c *Composer) {
		c.strictVariables = true
	}
}

// WithBanners sets the localized texts for the section banner comments.
func WithBanners(generated, config string) ComposerOption {
	return func(c *Composer) {
		c.bannerGenerated = generated
		c.bannerConfig = config
	}
}

// NewComposer creates a new empty [Composer].
func NewComposer(opts ...ComposerOption) *Composer {
	composer := &Composer{
		bannerGenerated: defaultBannerGenerated,
		bannerConfig:    defaultBannerConfig,
	}

	for _, opt := range opts {
		opt(composer)
	}

	return composer
}

// AddCommandBefore adds a generated command placed before the user's script.
func (c *Composer) AddCommandBefore(line string) {
	c.lines[OriginBefore] = append(c.lines[OriginBefore], line)
}

// AddCommandAfter adds a generated command placed after the user's script.
func (c *Composer) AddCommandAfter(line string) {
	c.lines[OriginAfter] = append(c.lines[OriginAfter], line)
}

// AddConfigLine adds a single line of the user's script. An empty string
// renders as a blank line.
func (c *Composer) AddConfigLine(line string) {
	c.lines[OriginConfig] = append(c.lines[OriginConfig], line)
}

// SetEchoOff controls whether the rendered script starts with "@ECHO OFF".
func (c *Composer) SetEchoOff(echoOff bool) {
	c.echoOff = echoOff
}

// EchoOff returns whether the rendered script starts with "@ECHO OFF".
func (c *Composer) EchoOff() bool {
	return c.echoOff
}

// SetVariable adds a "@SET name=value" line to the generated script header.
// The name is normalized to upper case. Setting an empty value removes the
// variable. Re-setting an existing variable updates it in place, so the
// position of its first insertion is kept.
//
// With [WithStrictVariables] it returns [ErrNotPrintableASCII] for names or
// values containing characters outside of the printable ASCII range.
func (c *Composer) SetVariable(name, value string) error {
	if c.strictVariables {
		if !isPrintableASCII(name) {
			return fmt.Errorf("variable name %q: %w",
				name, ErrNotPrintableASCII)
		}

		if !isPrintableASCII(value) {
			return fmt.Errorf("variable value %q: %w",
				value, ErrNotPrintableASCII)
		}
	}

	name = strings.ToUpper(name)

	idx := slices.IndexFunc(c.variables, func(v variable) bool {
		return v.name == name
	})

	if value == "" {
		if idx >= 0 {
			c.variables = slices.Delete(c.variables, idx, idx+1)
		}

		return nil
	}

	if idx >= 0 {
		c.variables[idx].value = value
	} else {
		c.variables = append(c.variables, variable{name, value})
	}

	return nil
}

// LoadConfigSection splits the raw text of the user's [autoexec] config
// section into lines and adds them with origin [OriginConfig]. Lines are
// trimmed. If the first line is an "echo off" command, it is not added as a
// line but sets the echo-off flag instead. Only the first line is checked
// this way. Empty input adds nothing and leaves the echo-off flag alone.
func (c *Composer) LoadConfigSection(rawText string) {
	if rawText == "" {
		return
	}

	lines := strings.Split(rawText, "\n")

	// A terminating newline does not start another line.
	if strings.HasSuffix(rawText, "\n") {
		lines = lines[:len(lines)-1]
	}

	for idx, line := range lines {
		line = strings.TrimSpace(line)

		if idx == 0 && isEchoOffCommand(line) {
			c.echoOff = true
			continue
		}

		c.AddConfigLine(line)
	}
}

// Render produces the final UTF-8 script. All lines are terminated with
// CR+LF. An all-empty composer renders an empty string.
func (c *Composer) Render() string {
	var out strings.Builder

	pushLine := func(line string) {
		out.WriteString(line)
		out.WriteString(lineTerminator)
	}

	bannerGenerated := commentPrefix + c.bannerGenerated
	bannerConfig := commentPrefix + c.bannerConfig

	// Whether the lines printed last belong to a generated section or the
	// user's config section. Switching between the two emits the banner of
	// the new section.
	printsGenerated := false
	printsConfig := false

	// Script header with "@ECHO OFF" and "@SET variable=value" lines.

	if c.echoOff || len(c.variables) > 0 {
		pushLine(bannerGenerated)

		printsGenerated = true
	}

	if c.echoOff {
		pushLine("")
		pushLine("@ECHO OFF")
	}

	if len(c.variables) > 0 {
		pushLine("")

		for _, v := range c.variables {
			pushLine("@SET " + v.name + "=" + v.value)
		}
	}

	if printsGenerated {
		pushLine("")
	}

	// Remaining script content, grouped by origin.

	for origin := OriginBefore; origin < numOrigins; origin++ {
		lines := c.lines[origin]
		if len(lines) == 0 {
			continue
		}

		switch origin {
		case OriginBefore, OriginAfter:
			if !printsGenerated {
				if out.Len() > 0 {
					pushLine("")
				}

				pushLine(bannerGenerated)
				pushLine("")

				printsGenerated = true
				printsConfig = false
			}
		case OriginConfig:
			if !printsConfig {
				if out.Len() > 0 {
					pushLine("")
				}

				pushLine(bannerConfig)
				pushLine("")

				printsGenerated = false
				printsConfig = true
			}
		}

		for _, line := range lines {
			pushLine(line)
		}
	}

	return out.String()
}

// isEchoOffCommand detects an "echo off" command line: an optional leading
// "@", then "echo", whitespace, "off", case insensitive, with nothing else
// trailing.
func isEchoOffCommand(line string) bool {
	if line == "" {
		return false
	}

	line = strings.TrimPrefix(line, "@")
	if len(line) < len("echo off") {
		return false
	}

	line = strings.ToLower(line)
	if !strings.HasPrefix(line, "echo") || !strings.HasSuffix(line, "off") {
		return false
	}

	interior := line[len("echo") : len(line)-len("off")]
	for _, r := range interior {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

func isPrintableASCII(s string) bool {
	for idx := range len(s) {
		if s[idx] < 0x20 || s[idx] > 0x7e {
			return false
		}
	}

	return true
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config reads the emulator's main configuration file. The file is
// YAML and carries the startup behavior switches along with the raw text of
// the user's [autoexec] section.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Autoexec section handling modes.
const (
	// SectionOverwrite drops the config file's autoexec section if commands
	// are given on the command line.
	SectionOverwrite = "overwrite"
	// SectionJoin always includes the config file's autoexec section.
	SectionJoin = "join"
)

// Startup verbosity levels.
const (
	VerbosityAuto          = "auto"
	VerbosityQuiet         = "quiet"
	VerbosityInstantLaunch = "instant-launch"
)

var (
	// ErrInvalidSectionMode is returned for unknown autoexec_section values.
	ErrInvalidSectionMode = errors.New("invalid autoexec_section mode")

	// ErrInvalidVerbosity is returned for unknown startup_verbosity values.
	ErrInvalidVerbosity = errors.New("invalid startup_verbosity")
)

// Config is the emulator's main configuration.
type Config struct {
	// Automount controls whether the drives directory is scanned for
	// drives to mount at boot.
	Automount bool `yaml:"automount"`

	// Secure seals the guest configuration after boot by disabling the
	// mount tools.
	Secure bool `yaml:"secure"`

	// Exit shuts the guest down once the boot script finished.
	Exit bool `yaml:"exit"`

	// AutoexecSection selects how the config file's autoexec section and
	// command line commands are combined. One of [SectionJoin] and
	// [SectionOverwrite].
	AutoexecSection string `yaml:"autoexec_section"`

	// StartupVerbosity selects the guest startup chattiness. One of
	// [VerbosityAuto], [VerbosityQuiet] and [VerbosityInstantLaunch].
	StartupVerbosity string `yaml:"startup_verbosity"`

	// Autoexec is the raw text of the user's autoexec section.
	Autoexec string `yaml:"autoexec"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Automount:        true,
		AutoexecSection:  SectionOverwrite,
		StartupVerbosity: VerbosityAuto,
	}
}

// Load reads the named config file from fsys. A missing file is not an
// error and yields [Default]. Fields absent from the file keep their
// default values.
func Load(fsys fs.FS, name string) (Config, error) {
	config := Default()

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}

		return Config{}, fmt.Errorf("read file: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", name, err)
	}

	err = config.validate()
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.AutoexecSection {
	case SectionJoin, SectionOverwrite:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSectionMode, c.AutoexecSection)
	}

	switch c.StartupVerbosity {
	case VerbosityAuto, VerbosityQuiet, VerbosityInstantLaunch:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidVerbosity, c.StartupVerbosity)
	}

	return nil
}

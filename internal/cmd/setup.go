// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/aibor/dosboot/internal/autoexec"
	"github.com/aibor/dosboot/internal/config"
	"github.com/aibor/dosboot/internal/drives"
)

// setup describes the one-time boot script composition sequence.
type setup struct {
	Config config.Config

	// Commands given with -c, run before the autoexec section.
	Commands []string

	// Positional command line arguments.
	Args []string

	Secure     bool
	NoAutoexec bool
	Exit       bool

	// DrivesFS is the file system scanned for drives to auto-mount. May be
	// nil if there is no drives directory.
	DrivesFS fs.FS
	// DrivesDir is the host path of DrivesFS, used in mount commands.
	DrivesDir string

	// IsDir reports whether a positional argument names a host directory.
	IsDir func(string) bool
}

// compose fills the composer with the complete boot script content, in the
// same order the emulator assembles it in: auto-mount commands, command
// line commands, the positional argument's commands, the config file's
// autoexec section, and the final shutdown command.
func (s *setup) compose(composer *autoexec.Composer) error {
	if s.Config.Automount && s.DrivesFS != nil {
		err := s.composeMounts(composer)
		if err != nil {
			return err
		}
	}

	// An exit call given with -c is not inserted in place. It is hoisted to
	// the end of the script so it can not precede autoexec section
	// commands.
	exitCallExists := false

	for _, command := range s.Commands {
		if command == "exit" || command == `"exit"` {
			exitCallExists = true
			continue
		}

		composer.AddCommandBefore(command)
	}

	foundDirOrCommand := s.composeArgs(composer)

	if !s.NoAutoexec {
		useConfigSection := s.Config.AutoexecSection == config.SectionJoin ||
			!foundDirOrCommand

		if useConfigSection {
			composer.LoadConfigSection(s.Config.Autoexec)
		} else {
			slog.Info("Using commands provided on the command line")
		}
	}

	usingInstantLaunch := s.Config.StartupVerbosity == config.VerbosityInstantLaunch &&
		foundDirOrCommand

	if exitCallExists || s.Exit || s.Config.Exit || usingInstantLaunch {
		composer.AddCommandAfter("@EXIT")
	}

	return nil
}

func (s *setup) composeMounts(composer *autoexec.Composer) error {
	mounts, err := drives.Scan(s.DrivesFS)
	if err != nil {
		return fmt.Errorf("scan drives: %w", err)
	}

	for _, mount := range mounts {
		composer.AddCommandBefore(mount.MountCommand(s.DrivesDir))

		if pathCommand, exists := mount.PathCommand(); exists {
			composer.AddCommandBefore(pathCommand)
		}
	}

	return nil
}

// composeArgs classifies the positional arguments and adds the resulting
// commands. It reports whether a directory, file or command was found.
//
// CD image arguments are aggregated into a single image mount command that
// precedes the command using them. The first argument of any other kind
// finishes the classification.
func (s *setup) composeArgs(composer *autoexec.Composer) bool {
	var cdromImages []string

	addCdromMount := func() {
		if len(cdromImages) == 0 {
			return
		}

		composer.AddCommandBefore(`@Z:\IMGMOUNT.COM D ` +
			strings.Join(cdromImages, " ") + " -t iso")
	}

	addSecure := func(after bool) {
		if !s.Secure && !s.Config.Secure {
			return
		}

		command := `@Z:\CONFIG.COM -securemode`
		if after {
			composer.AddCommandAfter(command)
		} else {
			composer.AddCommandBefore(command)
		}
	}

	for _, arg := range s.Args {
		if s.IsDir != nil && s.IsDir(arg) {
			addCdromMount()
			composer.AddCommandBefore(`@Z:\MOUNT.COM C "` + arg + `"`)
			composer.AddCommandBefore("@C:")
			addSecure(false)

			return true
		}

		upper := strings.ToUpper(arg)

		switch {
		case strings.HasSuffix(upper, ".BAT"):
			addCdromMount()
			addSecure(false)
			// Batch files must be called, else a final exit does not work.
			composer.AddCommandBefore("CALL " + arg)

			return true
		case strings.HasSuffix(upper, ".IMG"), strings.HasSuffix(upper, ".IMA"):
			addCdromMount()
			// No secure mode here. Booting an image is destructive and
			// secure mode disables boot.
			composer.AddCommandBefore(`BOOT "` + arg + `"`)

			return true
		case strings.HasSuffix(upper, ".ISO"), strings.HasSuffix(upper, ".CUE"):
			cdromImages = append(cdromImages, `"`+arg+`"`)

			continue
		default:
			addCdromMount()
			addSecure(false)
			composer.AddCommandBefore(arg)

			return true
		}
	}

	// No main command found. Mount any given CD images anyway and seal off
	// the configuration at the end of the script.
	addCdromMount()
	addSecure(true)

	return false
}

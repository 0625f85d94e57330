// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package drives scans a host directory layout for guest drives to mount
// automatically at boot. A sub directory named after a drive letter becomes
// a mount of that drive. An optional TOML file next to the directory tunes
// the mount.
//
// For a layout like
//
//	drives/
//	├── c/
//	├── c.conf
//	└── d/
//
// the scan yields one mount per directory. The conf file may override the
// drive letter, pass extra arguments to the mount command, and provide a
// PATH value to set in the guest.
package drives

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidDriveLetter is returned if a drive conf file overrides the
// drive letter with something that is not a single letter from a to y.
var ErrInvalidDriveLetter = errors.New("invalid drive letter")

// Conf is the optional per-drive mount configuration. It is read from a
// TOML file named like the drive directory with a ".conf" suffix.
type Conf struct {
	// Letter overrides the drive letter the directory is mounted as.
	Letter string `toml:"letter"`
	// Args are extra arguments appended to the generated mount command,
	// like "-t cdrom" or "-ro".
	Args string `toml:"args"`
	// Path is a PATH variable value to set in the guest after mounting.
	Path string `toml:"path"`
}

// Mount describes a single drive to mount at guest boot.
type Mount struct {
	// Letter is the drive letter the directory is mounted as.
	Letter string
	// Dir is the drive directory relative to the scanned root.
	Dir string
	// Args are extra arguments for the mount command.
	Args string
	// Path is a PATH variable value to set after mounting, if any.
	Path string
}

// MountCommand returns the guest boot script command mounting the drive.
// hostDir is the host path of the scanned root the guest tool resolves the
// drive directory against.
func (m *Mount) MountCommand(hostDir string) string {
	command := fmt.Sprintf(`@Z:\MOUNT.COM %s "%s"`,
		strings.ToUpper(m.Letter), filepath.Join(hostDir, m.Dir))

	if m.Args != "" {
		command += " " + m.Args
	}

	return command
}

// PathCommand returns the guest boot script command setting the PATH
// variable for the drive. It returns false if the drive conf did not
// provide a PATH value.
func (m *Mount) PathCommand() (string, bool) {
	if m.Path == "" {
		return "", false
	}

	return "@SET PATH=" + m.Path, true
}

// Scan looks for mountable drive directories in fsys, which must be rooted
// at the drives directory. Directories named with a single letter from a to
// y are considered. Letter z is skipped since it is taken by the emulator's
// own virtual drive. The returned mounts are ordered by drive letter.
//
// A broken or missing conf file is not an error. The mount falls back to
// the defaults, matching the behavior of a missing file.
func Scan(fsys fs.FS) ([]Mount, error) {
	var mounts []Mount

	for letter := 'a'; letter < 'z'; letter++ {
		dir := string(letter)

		info, err := fs.Stat(fsys, dir)
		if err != nil || !info.IsDir() {
			continue
		}

		mount, err := newMount(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("drive %s: %w", dir, err)
		}

		mounts = append(mounts, mount)
	}

	return mounts, nil
}

func newMount(fsys fs.FS, dir string) (Mount, error) {
	conf := readConf(fsys, dir+".conf", dir)

	letter := strings.ToLower(conf.Letter)
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'y' {
		return Mount{}, fmt.Errorf("%w: %q", ErrInvalidDriveLetter, conf.Letter)
	}

	mount := Mount{
		Letter: letter,
		Dir:    dir,
		Args:   conf.Args,
		Path:   conf.Path,
	}

	return mount, nil
}

func readConf(fsys fs.FS, name, defaultLetter string) Conf {
	conf := Conf{
		Letter: defaultLetter,
	}

	_, err := toml.DecodeFS(fsys, name, &conf)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Broken drive conf file, using defaults",
				slog.String("file", name),
				slog.Any("error", err))

			return Conf{Letter: defaultLetter}
		}
	}

	if conf.Letter == "" {
		conf.Letter = defaultLetter
	}

	return conf
}

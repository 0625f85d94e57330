// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/aibor/dosboot/internal/codepage"
)

// commandList collects a repeatable string flag.
type commandList []string

func (l *commandList) String() string {
	return strings.Join(*l, ",")
}

func (l *commandList) Set(s string) error {
	*l = append(*l, s)

	return nil
}

// variableList collects repeatable NAME=VALUE assignments.
type variableList []variableAssignment

type variableAssignment struct {
	Name  string
	Value string
}

func (l *variableList) String() string {
	assignments := make([]string, len(*l))
	for idx, v := range *l {
		assignments[idx] = v.Name + "=" + v.Value
	}

	return strings.Join(assignments, ",")
}

func (l *variableList) Set(s string) error {
	name, value, found := strings.Cut(s, "=")
	if !found || name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidVariable, s)
	}

	*l = append(*l, variableAssignment{Name: name, Value: value})

	return nil
}

type flags struct {
	ConfigPath      string
	DrivesDir       string
	OutputPath      string
	DumpPath        string
	CodePage        uint
	Language        string
	Commands        commandList
	Variables       variableList
	Secure          bool
	NoAutoexec      bool
	Exit            bool
	StrictVariables bool
	Version         bool
	Debug           bool

	// Positional arguments: a directory, batch file, boot image, CD images
	// or a plain command.
	Args []string
}

func parseArgs(name string, args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		ConfigPath: "dosboot.yaml",
		DrivesDir:  "drives",
		CodePage:   uint(codepage.Default),
		Language:   "en",
	}

	fsName := name + " [flags...] [dir|file|command]"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&flags.ConfigPath,
		"config",
		flags.ConfigPath,
		"emulator config file to read",
	)

	fs.StringVar(
		&flags.DrivesDir,
		"drives",
		flags.DrivesDir,
		"host directory scanned for drives to auto-mount",
	)

	fs.StringVar(
		&flags.OutputPath,
		"o",
		flags.OutputPath,
		"write the published AUTOEXEC.BAT to this file instead of stdout",
	)

	fs.StringVar(
		&flags.DumpPath,
		"dump",
		flags.DumpPath,
		"write the virtual drive as cpio archive to this file",
	)

	fs.UintVar(
		&flags.CodePage,
		"code-page",
		flags.CodePage,
		"guest code page to publish the script in",
	)

	fs.StringVar(
		&flags.Language,
		"lang",
		flags.Language,
		"language tag for generated script banners",
	)

	fs.Var(
		&flags.Commands,
		"c",
		"command to run before the autoexec section. "+
			"Flag may be used more than once.",
	)

	fs.Var(
		&flags.Variables,
		"set",
		"NAME=VALUE environment variable to set in the boot script. "+
			"Flag may be used more than once.",
	)

	fs.BoolVar(
		&flags.Secure,
		"securemode",
		flags.Secure,
		"disable the mount tools after the boot script ran",
	)

	fs.BoolVar(
		&flags.NoAutoexec,
		"noautoexec",
		flags.NoAutoexec,
		"skip the autoexec section of the config file",
	)

	fs.BoolVar(
		&flags.Exit,
		"exit",
		flags.Exit,
		"shut the guest down once the boot script finished",
	)

	fs.BoolVar(
		&flags.StrictVariables,
		"strict-variables",
		flags.StrictVariables,
		"reject variables with non printable ASCII names or values",
	)

	fs.BoolVar(
		&flags.Version,
		"version",
		flags.Version,
		"show version and exit",
	)

	fs.BoolVar(
		&flags.Debug,
		"debug",
		flags.Debug,
		"enable debug output",
	)

	if err := fs.Parse(args); err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	if flags.CodePage > 0xffff || !codepage.Known(uint16(flags.CodePage)) {
		fmt.Fprintf(fs.Output(), "%v: %d\n", ErrUnknownCodePage, flags.CodePage)
		fs.Usage()

		return nil, &ParseArgsError{err: ErrUnknownCodePage}
	}

	flags.Args = fs.Args()

	return flags, nil
}

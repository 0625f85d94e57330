// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"golang.org/x/text/language"

	"github.com/aibor/dosboot/internal/autoexec"
	"github.com/aibor/dosboot/internal/codepage"
	"github.com/aibor/dosboot/internal/config"
	"github.com/aibor/dosboot/internal/msg"
	"github.com/aibor/dosboot/internal/virtfs"
)

const localConfigFile = ".dosboot-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	name := filepath.Base(args[0])

	mergedArgs, err := MergedArgs(args[1:], os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(name, mergedArgs, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func newComposer(flags *flags) (*autoexec.Composer, error) {
	tag, err := language.Parse(flags.Language)
	if err != nil {
		return nil, fmt.Errorf("parse language: %w", err)
	}

	catalog, err := msg.NewCatalog(tag)
	if err != nil {
		return nil, fmt.Errorf("message catalog: %w", err)
	}

	opts := []autoexec.ComposerOption{
		autoexec.WithBanners(
			catalog.Get(msg.AutoexecBannerGenerated),
			catalog.Get(msg.AutoexecBannerConfig),
		),
	}

	if flags.StrictVariables {
		opts = append(opts, autoexec.WithStrictVariables())
	}

	return autoexec.NewComposer(opts...), nil
}

func newSetup(flags *flags, cfg config.Config) *setup {
	setup := &setup{
		Config:     cfg,
		Commands:   flags.Commands,
		Args:       flags.Args,
		Secure:     flags.Secure,
		NoAutoexec: flags.NoAutoexec,
		Exit:       flags.Exit,
		DrivesDir:  flags.DrivesDir,
		IsDir: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.IsDir()
		},
	}

	if info, err := os.Stat(flags.DrivesDir); err == nil && info.IsDir() {
		setup.DrivesFS = os.DirFS(flags.DrivesDir)
	}

	return setup
}

func run(flags *flags, cfg IO) error {
	configDir := filepath.Dir(flags.ConfigPath)

	mainConfig, err := config.Load(os.DirFS(configDir),
		filepath.Base(flags.ConfigPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	composer, err := newComposer(flags)
	if err != nil {
		return err
	}

	err = newSetup(flags, mainConfig).compose(composer)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	drive := virtfs.New()

	publisher := autoexec.NewPublisher(
		composer,
		autoexec.TranscodeFunc(codepage.Transcode),
		drive,
	)

	for _, assignment := range flags.Variables {
		err := publisher.SetVariable(assignment.Name, assignment.Value)
		if err != nil {
			return fmt.Errorf("set variable: %w", err)
		}
	}

	err = publisher.Register(uint16(flags.CodePage))
	if err != nil {
		return fmt.Errorf("register boot script: %w", err)
	}

	data, err := fs.ReadFile(drive, autoexec.FileName)
	if err != nil {
		return fmt.Errorf("read published script: %w", err)
	}

	err = writeOutput(flags.OutputPath, data, cfg.Stdout)
	if err != nil {
		return err
	}

	if flags.DumpPath != "" {
		err := dumpDrive(drive, flags.DumpPath)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		if err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Debug("Wrote published boot script", slog.String("path", path))

	return nil
}

func dumpDrive(drive *virtfs.FS, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer file.Close()

	err = virtfs.WriteCPIO(drive, file)
	if err != nil {
		return fmt.Errorf("dump drive: %w", err)
	}

	slog.Debug("Wrote virtual drive archive", slog.String("path", path))

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// parseArgs already prints errors, so we just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(args []string, cfg IO) int {
	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, ok := debug.ReadBuildInfo()
		if !ok {
			slog.Error(ErrReadBuildInfo.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(flags, cfg)
	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package virtfs

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

// WriteCPIO writes the complete file tree of fsys to w as a cpio archive in
// newc format. Intended for inspecting the virtual drive content on the
// host.
func WriteCPIO(fsys fs.FS, w io.Writer) error {
	writer := cpio.NewWriter(w)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		if entry.IsDir() {
			return writeDirectory(writer, path)
		}

		return writeRegular(fsys, writer, path)
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeDirectory adds a directory entry for the given path to the archive.
func writeDirectory(writer *cpio.Writer, path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: numLinks,
	}

	err := writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

// writeRegular copies the virtual file at the given path into the archive.
func writeRegular(fsys fs.FS, writer *cpio.Writer, path string) error {
	file, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("read info for %s: %w", path, err)
	}

	header := &cpio.Header{
		Name: path,
		Mode: cpio.TypeReg | cpio.FileMode(info.Mode().Perm()),
		Size: info.Size(),
	}

	err = writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	_, err = io.Copy(writer, file)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

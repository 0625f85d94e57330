// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package virtfs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const defaultFileMode = 0o755

// FileOpenFunc returns an open [fs.File] or an error if opening fails.
type FileOpenFunc func() (fs.File, error)

var _ fs.FS = (*FS)(nil)

// FS represents the virtual drive exposed to the guest. It supports
// directories, host-backed regular files and synthesized regular files.
//
// Synthesized files holding generated content are created with
// [FS.Register] and replaced in place with [FS.Update]. Host-backed files
// can be added with [FS.Add]. Use [FS.Mkdir] or [FS.MkdirAll] to create any
// required directories beforehand.
type FS struct {
	root directory
}

// New creates a new empty [FS].
func New() *FS {
	return &FS{
		root: make(directory),
	}
}

// Open opens the named file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	dEntry, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return dEntry.file.open(dEntry)
}

// Mkdir creates a new directory with the given name.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Mkdir(name string) error {
	parentName, dirName := filepath.Split(clean(name))

	parent, err := fsys.subDir(clean(parentName))
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	err = parent.add(dirName, &directory{})
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// MkdirAll creates a directory with the given name along with all necessary
// parents.
//
// It returns a [PathError] in case of errors. If the directory exists
// already, it does nothing and returns nil.
func (fsys *FS) MkdirAll(name string) error {
	cleaned := clean(name)

	dEntry, err := fsys.find(cleaned)
	if err == nil {
		if dEntry.IsDir() {
			return nil
		}

		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  ErrFileNotDir,
		}
	}

	parent := filepath.Dir(cleaned)
	if parent != cleaned {
		err = fsys.MkdirAll(parent)
		if err != nil {
			return err
		}
	}

	return fsys.Mkdir(name)
}

// Add creates a new host-backed regular file with the given name.
//
// File content is read from the file returned by the given [FileOpenFunc].
// It returns a [PathError] in case of errors.
func (fsys *FS) Add(name string, openFn FileOpenFunc) error {
	if openFn == nil {
		return &PathError{
			Op:   "add",
			Path: name,
			Err:  fmt.Errorf("%w: openFunc is nil", ErrInvalidArgument),
		}
	}

	err := fsys.add(name, hostFile(openFn))
	if err != nil {
		return &PathError{
			Op:   "add",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// Register creates a new synthesized regular file with the given name and
// content. Use [FS.Update] to replace the content later.
//
// It returns a [PathError] wrapping [ErrFileExist] if the name is taken
// already.
func (fsys *FS) Register(name string, data []byte) error {
	err := fsys.add(name, &synthesizedFile{data: data})
	if err != nil {
		return &PathError{
			Op:   "register",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// Update replaces the content of a synthesized file in place.
//
// It returns a [PathError] wrapping [ErrFileNotSynthesized] if the file
// exists but was not created with [FS.Register].
func (fsys *FS) Update(name string, data []byte) error {
	dEntry, err := fsys.find(name)
	if err != nil {
		return &PathError{
			Op:   "update",
			Path: name,
			Err:  err,
		}
	}

	synthesized, isSynthesized := dEntry.file.(*synthesizedFile)
	if !isSynthesized {
		return &PathError{
			Op:   "update",
			Path: name,
			Err:  ErrFileNotSynthesized,
		}
	}

	synthesized.data = data

	return nil
}

func (fsys *FS) subDir(name string) (*directory, error) {
	dEntry, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	dir, isDir := dEntry.file.(*directory)
	if !isDir {
		return nil, ErrFileNotDir
	}

	return dir, nil
}

func (fsys *FS) add(name string, file file) error {
	dirName, fileName := filepath.Split(clean(name))

	parent, err := fsys.subDir(clean(dirName))
	if err != nil {
		return err
	}

	err = parent.add(fileName, file)
	if err != nil {
		return err
	}

	return nil
}

func (fsys *FS) find(name string) (dirEntry, error) {
	dEntry := dirEntry{name, &fsys.root}

	if name == "" || name == "." {
		return dEntry, nil
	}

	if !fs.ValidPath(name) {
		return dirEntry{}, ErrFileInvalid
	}

	for elem := range strings.SplitSeq(name, string(filepath.Separator)) {
		if !dEntry.IsDir() {
			return dirEntry{}, ErrFileNotExist
		}

		next, exists := (*dEntry.file.(*directory))[elem]
		if !exists {
			return dirEntry{}, ErrFileNotExist
		}

		dEntry = dirEntry{elem, next}
	}

	return dEntry, nil
}

func clean(path string) string {
	path = filepath.Clean(path)
	return strings.TrimPrefix(path, string(filepath.Separator))
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if command usage help was requested.
	ErrHelp = flag.ErrHelp

	// ErrUnknownCodePage is returned if the requested code page has no
	// known character table.
	ErrUnknownCodePage = errors.New("unknown code page")

	// ErrInvalidVariable is returned for -set arguments that are not of
	// the form NAME=VALUE.
	ErrInvalidVariable = errors.New("invalid variable assignment")

	// ErrReadBuildInfo is returned if build info can not be read from the
	// binary.
	ErrReadBuildInfo = errors.New("failed to read build info")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}

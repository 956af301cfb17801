// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItem is returned when an item row cannot be passed to dialog.
	ErrInvalidItem = errors.New("invalid item")

	// ErrUnknownOption is returned by Options.Set for unrecognized names.
	ErrUnknownOption = errors.New("unknown option")
)

// ConfigurationError reports that the dialog executable could not be used.
// It is returned before any process is started.
type ConfigurationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("dialog executable %q %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ExecutionError reports that the operating system could not run dialog.
// A non-zero exit status is not an ExecutionError.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("failed to run dialog: %v", e.Err)
	}
	return fmt.Sprintf("failed to run %s: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ParseError reports output that did not have the shape a widget expects.
type ParseError struct {
	Widget string
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Widget, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

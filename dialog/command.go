// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// DefaultProgram is the engine looked up on PATH when no explicit path is set.
const DefaultProgram = "dialog"

// Stream names the descriptor dialog writes its result to.
type Stream int

const (
	StreamStderr Stream = iota
	StreamStdout
)

func (s Stream) redirect() string {
	if s == StreamStdout {
		return ">"
	}
	return "2>"
}

// Invocation is one fully built dialog command.
type Invocation struct {
	// Argv is the argument vector handed to the process, program first.
	Argv []string
	// Widget is the widget name without its leading dashes.
	Widget string
	// Output is the scratch file the side channel is redirected to.
	Output string
	Stream Stream
}

// Args returns argv followed by the redirection tokens, in the order a
// shell would see them.
func (inv Invocation) Args() []string {
	out := append([]string(nil), inv.Argv...)
	if inv.Output != "" {
		out = append(out, inv.Stream.redirect(), inv.Output)
	}
	return out
}

// String renders the invocation as a shell command. Splitting the result
// with shell word rules yields Args again.
func (inv Invocation) String() string {
	if len(inv.Argv) == 0 {
		return ""
	}
	cmd := shellquote.Join(inv.Argv...)
	if inv.Output != "" {
		cmd += " " + inv.Stream.redirect() + " " + shellquote.Join(inv.Output)
	}
	return cmd
}

// IsZero reports whether no command has been built.
func (inv Invocation) IsZero() bool {
	return len(inv.Argv) == 0
}

// BuildCommand composes path, serialized options, the widget token and the
// widget's positional arguments. output names the side-channel file; an
// empty output leaves the redirection off.
func BuildCommand(path string, opts Options, widget string, args []string, output string) Invocation {
	tokens := opts.Tokens()
	argv := make([]string, 0, 2+len(tokens)+len(args))
	argv = append(argv, path)
	argv = append(argv, tokens...)
	widget = strings.TrimPrefix(widget, "--")
	argv = append(argv, "--"+widget)
	argv = append(argv, args...)
	stream := StreamStderr
	if opts.Stdout {
		stream = StreamStdout
	}
	return Invocation{Argv: argv, Widget: widget, Output: output, Stream: stream}
}

// resolveExecutable finds the engine binary. An explicit path must exist and
// be executable; otherwise program is searched on PATH. In dry-run mode
// nothing is required to exist.
func resolveExecutable(path, program string, dryRun bool) (string, error) {
	if program == "" {
		program = DefaultProgram
	}
	if path != "" {
		if dryRun {
			return path, nil
		}
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", &ConfigurationError{Path: path, Reason: "does not exist", Err: err}
			}
			return "", &ConfigurationError{Path: path, Reason: "cannot be inspected", Err: err}
		}
		if info.IsDir() {
			return "", &ConfigurationError{Path: path, Reason: "is a directory"}
		}
		if info.Mode().Perm()&0o111 == 0 {
			return "", &ConfigurationError{Path: path, Reason: "is not executable"}
		}
		return path, nil
	}
	found, err := exec.LookPath(program)
	if err != nil {
		if dryRun {
			return program, nil
		}
		return "", &ConfigurationError{Path: program, Reason: "not found on PATH", Err: err}
	}
	return found, nil
}

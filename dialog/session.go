// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/google/uuid"
)

// noExitCode is recorded when the process never produced an exit status.
const noExitCode ExitCode = -1

// Session runs widgets with a shared set of options. Widget calls on one
// Session are serialized.
type Session struct {
	Options

	// Program is looked up on PATH when Path is empty. Defaults to "dialog".
	Program string
	// Path is an explicit engine binary. It must exist and be executable.
	Path string
	// DryRun builds commands without running them. Widgets then return
	// their empty value and ExitCode reports ExitOK.
	DryRun bool
	Logger Logger

	// Terminal streams handed to the engine. Nil means the process's own.
	// The result stream is never one of these.
	TermIn  io.Reader
	TermOut io.Writer
	TermErr io.Writer

	callMu   sync.Mutex
	stateMu  sync.Mutex
	last     Invocation
	exitCode ExitCode
}

// New returns a Session that runs "dialog" from PATH.
func New() *Session {
	return &Session{Program: DefaultProgram}
}

// LastCommand returns the most recently built invocation. It is set before
// the process starts, so streaming callbacks can read it.
func (s *Session) LastCommand() Invocation {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.last
}

// ExitCode returns the exit status of the most recent call, or -1 when the
// process could not be run.
func (s *Session) ExitCode() ExitCode {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.exitCode
}

type request struct {
	widget string
	// args shapes the positional arguments from the call's option snapshot.
	args func(opts Options) ([]string, error)
	// output selects the exit codes whose result stream is decoded.
	output outputKind
	// feed, when set, is connected to the engine's standard input.
	feed func(io.Writer) error
}

type outcome struct {
	code ExitCode
	opts Options
	data []byte
	// decode is false when the result stream holds nothing to decode.
	decode bool
}

func (s *Session) invoke(req request) (outcome, error) {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	opts := s.Options
	res := outcome{opts: opts}

	args, err := req.args(opts)
	if err != nil {
		return res, err
	}
	path, err := resolveExecutable(s.Path, s.Program, s.DryRun)
	if err != nil {
		s.record(Invocation{}, noExitCode)
		return res, err
	}
	id := runID()

	if s.DryRun {
		inv := BuildCommand(path, opts, req.widget, args, os.DevNull)
		s.record(inv, ExitOK)
		s.debugf("run %s (dry): %s", id, inv)
		res.code = ExitOK
		return res, nil
	}

	scratch, err := newScratch()
	if err != nil {
		return res, &ExecutionError{Command: req.widget, Err: err}
	}
	defer func() {
		if cerr := scratch.Close(); cerr != nil {
			s.debugf("run %s: %v", id, cerr)
		}
	}()

	inv := BuildCommand(path, opts, req.widget, args, scratch.Name())
	s.record(inv, noExitCode)
	s.debugf("run %s: %s", id, inv)

	cmd := exec.Command(inv.Argv[0], inv.Argv[1:]...)
	cmd.Stdin = s.stdin()
	if inv.Stream == StreamStdout {
		cmd.Stdout = scratch.file
		cmd.Stderr = s.stderr()
	} else {
		cmd.Stdout = s.stdout()
		cmd.Stderr = scratch.file
	}

	var feedErr error
	if req.feed != nil {
		feedErr, err = runFeeding(cmd, req.feed)
	} else {
		err = cmd.Run()
	}
	code, err := exitStatus(inv, err)
	s.setExitCode(code)
	if err != nil {
		s.debugf("run %s: %v", id, err)
		return res, err
	}
	s.debugf("run %s: exit %d (%s)", id, int(code), code)
	res.code = code
	if feedErr != nil {
		return res, feedErr
	}
	if !code.carriesOutput(req.output) {
		return res, nil
	}
	data, err := scratch.ReadAll()
	if err != nil {
		return res, &ExecutionError{Command: inv.String(), Err: err}
	}
	res.data = data
	res.decode = true
	return res, nil
}

// runFeeding starts cmd with a pipe on its standard input, hands the pipe to
// feed, then closes it and waits. The process is always awaited.
func runFeeding(cmd *exec.Cmd, feed func(io.Writer) error) (feedErr, err error) {
	cmd.Stdin = nil
	pipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	feedErr = feed(pipe)
	if cerr := pipe.Close(); cerr != nil && feedErr == nil && !errors.Is(cerr, os.ErrClosed) {
		feedErr = cerr
	}
	return feedErr, cmd.Wait()
}

// exitStatus separates a normal exit status from a failure to run.
func exitStatus(inv Invocation, err error) (ExitCode, error) {
	if err == nil {
		return ExitOK, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return ExitCode(code), nil
		}
	}
	return noExitCode, &ExecutionError{Command: inv.String(), Err: err}
}

func (s *Session) record(inv Invocation, code ExitCode) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.last = inv
	s.exitCode = code
}

func (s *Session) setExitCode(code ExitCode) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.exitCode = code
}

func (s *Session) debugf(format string, args ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug(format, args...)
}

func (s *Session) logDecode(err error) error {
	if err != nil {
		s.debugf("decode: %v", err)
	}
	return err
}

func (s *Session) stdin() io.Reader {
	if s.TermIn != nil {
		return s.TermIn
	}
	return os.Stdin
}

func (s *Session) stdout() io.Writer {
	if s.TermOut != nil {
		return s.TermOut
	}
	return os.Stdout
}

func (s *Session) stderr() io.Writer {
	if s.TermErr != nil {
		return s.TermErr
	}
	return os.Stderr
}

// positional returns an args func for arguments that do not depend on
// options.
func positional(args ...string) func(Options) ([]string, error) {
	return func(Options) ([]string, error) {
		return args, nil
	}
}

func runID() string {
	return uuid.NewString()[:8]
}

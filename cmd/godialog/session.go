// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/godialog/internal/config"
)

// newSession builds a Session from the saved config with the command-line
// flags layered on top. The returned func closes the debug log.
func newSession(flags widgetFlags, st streams) (*dialog.Session, func(), error) {
	cfg, _, err := config.Load(flags.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	s := dialog.New()
	if err := config.Apply(cfg, s); err != nil {
		return nil, nil, newUsageError(err.Error())
	}
	if flags.Path != "" {
		s.Path = flags.Path
	}
	if flags.DryRun {
		s.DryRun = true
	}
	if flags.Title != "" {
		s.Title = flags.Title
	}
	if flags.Backtitle != "" {
		s.Backtitle = flags.Backtitle
	}
	if flags.Separator != "" {
		s.OutputSeparator = flags.Separator
	}
	for _, kv := range flags.Set {
		if _, _, err := applySetFlag(&s.Options, kv); err != nil {
			return nil, nil, err
		}
	}
	s.TermIn, s.TermOut, s.TermErr = st.in, st.out, st.err

	logPath := flags.Log
	if logPath == "" {
		logPath = cfg.LogFile
	}
	s.Logger = dialog.NopLogger{}
	closeLog := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log: %w", err)
		}
		s.Logger = newDebugLogger(f)
		closeLog = func() { _ = f.Close() }
	}
	return s, closeLog, nil
}

// debugLogger adapts a standard logger to dialog.Logger.
type debugLogger struct {
	*log.Logger
}

func newDebugLogger(w io.Writer) debugLogger {
	return debugLogger{log.New(w, "godialog: ", log.LstdFlags)}
}

func (l debugLogger) Debug(format string, args ...any) {
	l.Printf(format, args...)
}

// applySetFlag applies one --set name=value. The value is tried as a string,
// then a bool, an int and a "y,x" pair, and the first form the option accepts
// wins. A bare name sets a flag option to true.
func applySetFlag(opts *dialog.Options, kv string) (string, any, error) {
	name, raw, ok := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, newUsageError(fmt.Sprintf("--set %q: missing option name", kv))
	}
	candidates := []any{true}
	if ok {
		candidates = setCandidates(raw)
	}
	var err error
	for _, value := range candidates {
		err = opts.Set(name, value)
		if err == nil {
			return optionKey(name), value, nil
		}
		if errors.Is(err, dialog.ErrUnknownOption) {
			break
		}
	}
	return "", nil, newUsageError(fmt.Sprintf("--set %s: %v", kv, err))
}

func setCandidates(raw string) []any {
	out := []any{raw}
	if b, err := strconv.ParseBool(raw); err == nil {
		out = append(out, b)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		out = append(out, n)
	}
	if pair := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }); len(pair) == 2 {
		y, yerr := strconv.Atoi(pair[0])
		x, xerr := strconv.Atoi(pair[1])
		if yerr == nil && xerr == nil {
			out = append(out, []int{y, x})
		}
	}
	return out
}

// optionKey is the spelling saved in config.toml.
func optionKey(name string) string {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "--")
	return strings.ReplaceAll(name, "_", "-")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

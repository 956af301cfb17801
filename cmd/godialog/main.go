// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/yargs"
)

func main() {
	err := runCLI(os.Args[1:], standardStreams())
	if err == nil {
		return
	}
	reportCLIError(os.Stderr, err)
	os.Exit(exitCodeFor(err))
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

// exitStatusError carries a non-zero dialog exit status out to main.
type exitStatusError struct {
	code dialog.ExitCode
}

func (e exitStatusError) Error() string {
	return fmt.Sprintf("dialog closed with %s", e.code)
}

func reportCLIError(w io.Writer, err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, usageErr.message)
		return
	}
	var statusErr exitStatusError
	if errors.As(err, &statusErr) {
		return
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return
	}
	fmt.Fprintln(w, err.Error())
}

func exitCodeFor(err error) int {
	var statusErr exitStatusError
	if errors.As(err, &statusErr) {
		return int(statusErr.code)
	}
	var usageErr usageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func standardStreams() streams {
	return streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

func runCLI(args []string, st streams) error {
	args = normalizeArgs(args)
	handlers := map[string]yargs.SubcommandHandler{
		"samples": func(_ context.Context, args []string) error {
			return handleSamples(args, st)
		},
		"config": func(_ context.Context, args []string) error {
			return handleConfig(args, st)
		},
		"version": func(_ context.Context, args []string) error {
			return handleVersion(args, st)
		},
	}
	for name, cmd := range widgetCommands {
		handlers[name] = func(_ context.Context, args []string) error {
			return handleWidget(cmd, args, st)
		}
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

var helpConfig = buildHelpConfig()

func buildHelpConfig() yargs.HelpConfig {
	subs := map[string]yargs.SubCommandInfo{
		"samples": {
			Name:        "samples",
			Description: "Run one of the bundled demo widgets",
			Usage:       "[menu|checklist|form|mixedgauge|gauge|calendar]",
			Examples: []string{
				"godialog samples",
				"godialog samples mixedgauge",
				"godialog samples form --dry-run",
			},
		},
		"config": {
			Name:        "config",
			Description: "Show or update the saved default options",
			Examples: []string{
				"godialog config",
				"godialog config --set colors=true --set ok-label=Go",
				"godialog config --path /usr/local/bin/dialog",
			},
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	}
	for _, name := range widgetNames() {
		cmd := widgetCommands[name]
		subs[name] = yargs.SubCommandInfo{
			Name:        name,
			Description: cmd.description,
			Usage:       cmd.usage,
			Examples:    cmd.examples,
		}
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "godialog",
			Description: "Run dialog(1) widgets and print what the user chose",
			Examples: []string{
				"godialog --help",
				"godialog help menu",
				"godialog menu 'Pick one' 1 'First' 2 'Second'",
				"godialog checklist --title Toppings 'Choose' cheese Cheese on olives Olives off",
				"godialog yesno 'Continue?' && echo yes",
				"seq 0 10 100 | godialog gauge 'Working'",
				"godialog menu --dry-run 'Pick' a Alpha",
			},
		},
		SubCommands: subs,
	}
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	if args[0] == "--version" {
		return append([]string{"version"}, args[1:]...)
	}
	if args[0] == "help" {
		return rewriteHelpArgs(args[1:])
	}
	return args
}

func rewriteHelpArgs(args []string) []string {
	if len(args) == 0 || isHelpFlag(args[0]) {
		return []string{"--help"}
	}
	if isKnownCommand(args[0]) {
		return []string{args[0], "--help"}
	}
	return []string{"--help"}
}

func isHelpFlag(value string) bool {
	return value == "-h" || value == "--help"
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if isHelpFlag(arg) {
			return true
		}
	}
	return false
}

func isKnownCommand(value string) bool {
	switch value {
	case "samples", "config", "version":
		return true
	}
	_, ok := widgetCommands[value]
	return ok
}

func handleVersion(args []string, st streams) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(st.out, versionString())
	return nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if c := strings.TrimSpace(commit); c != "" {
		return fmt.Sprintf("%s (%s)", trimmed, c)
	}
	return trimmed
}

func widgetNames() []string {
	names := make([]string, 0, len(widgetCommands))
	for name := range widgetCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

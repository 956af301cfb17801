// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/godialog/internal/tui/theme"
)

func commandTheme(out io.Writer) theme.Theme {
	return theme.ForOutput(out)
}

// renderCommand renders inv as a shell command, styling the program, option
// flags, widget and redirection apart from the values. With a disabled
// theme the result equals inv.String().
func renderCommand(th theme.Theme, inv dialog.Invocation) string {
	if inv.IsZero() {
		return ""
	}
	widgetToken := "--" + inv.Widget
	words := make([]string, 0, len(inv.Argv)+2)
	seenWidget := false
	for i, arg := range inv.Argv {
		style := th.CLI.Value
		switch {
		case i == 0:
			style = th.CLI.Program
		case seenWidget:
		case arg == widgetToken:
			style = th.CLI.Widget
			seenWidget = true
		case strings.HasPrefix(arg, "--"):
			style = th.CLI.Flag
		}
		words = append(words, style.Render(shellquote.Join(arg)))
	}
	if redirect := inv.Args()[len(inv.Argv):]; len(redirect) == 2 {
		words = append(words,
			th.CLI.Redirect.Render(redirect[0]),
			th.CLI.Muted.Render(shellquote.Join(redirect[1])),
		)
	}
	return strings.Join(words, " ")
}

// renderExit names the button or key that closed a widget.
func renderExit(th theme.Theme, code dialog.ExitCode) string {
	return th.ExitStyle(code).Render(code.String())
}

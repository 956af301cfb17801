// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/shayne/godialog/dialog"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type Theme struct {
	Enabled bool
	Mode    Mode
	Profile termenv.Profile
	CLI     CLIStyles
	tokens  tokens
}

type CLIStyles struct {
	Program    lipgloss.Style
	Flag       lipgloss.Style
	Widget     lipgloss.Style
	Value      lipgloss.Style
	Redirect   lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Header     lipgloss.Style
	ExitOK     lipgloss.Style
	ExitCancel lipgloss.Style
	ExitOther  lipgloss.Style
}

type manager struct {
	mu     sync.Mutex
	cached map[uintptr]Theme
}

var global = &manager{cached: map[uintptr]Theme{}}

// ForOutput returns the theme for out. Plain writers and NO_COLOR get a
// disabled theme whose styles render text unchanged.
func ForOutput(out io.Writer) Theme {
	if !EnabledForOutput(out) {
		return Theme{}
	}
	return global.themeFor(out)
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// themeFor caches per terminal file descriptor, since detecting the
// background colour queries the terminal.
func (m *manager) themeFor(out io.Writer) Theme {
	file, ok := out.(*os.File)
	if !ok {
		return detect(out)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cached[file.Fd()]; ok {
		return cached
	}
	th := detect(out)
	m.cached[file.Fd()] = th
	return th
}

func detect(out io.Writer) Theme {
	renderer := lipgloss.NewRenderer(out)
	mode := ModeLight
	if renderer.HasDarkBackground() {
		mode = ModeDark
	}
	return build(renderer, mode)
}

type tokens struct {
	accent string
	muted  string
	label  string
	value  string
	header string
	error  string
	ok     string
	cancel string
}

var darkTokens = tokens{
	accent: "213",
	muted:  "243",
	label:  "244",
	value:  "252",
	header: "81",
	error:  "203",
	ok:     "77",
	cancel: "214",
}

var lightTokens = tokens{
	accent: "213",
	muted:  "240",
	label:  "238",
	value:  "234",
	header: "23",
	error:  "160",
	ok:     "28",
	cancel: "94",
}

func build(r *lipgloss.Renderer, mode Mode) Theme {
	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}

	cli := CLIStyles{
		Program:    r.NewStyle().Bold(true),
		Flag:       r.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Widget:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.accent)),
		Value:      r.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Redirect:   r.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Label:      r.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Muted:      r.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Error:      r.NewStyle().Foreground(lipgloss.Color(pal.error)),
		Header:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.header)),
		ExitOK:     r.NewStyle().Foreground(lipgloss.Color(pal.ok)),
		ExitCancel: r.NewStyle().Foreground(lipgloss.Color(pal.cancel)),
		ExitOther:  r.NewStyle().Foreground(lipgloss.Color(pal.header)),
	}

	return Theme{
		Enabled: true,
		Mode:    mode,
		Profile: r.ColorProfile(),
		CLI:     cli,
		tokens:  pal,
	}
}

// ExitStyle picks the style used to report code.
func (t Theme) ExitStyle(code dialog.ExitCode) lipgloss.Style {
	switch {
	case code == dialog.ExitOK:
		return t.CLI.ExitOK
	case code.IsCancel():
		return t.CLI.ExitCancel
	default:
		return t.CLI.ExitOther
	}
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Huh returns a form theme matching t. A disabled theme gets huh's base
// theme.
func (t Theme) Huh() *huh.Theme {
	if !t.Enabled {
		return huh.ThemeBase()
	}
	return buildHuhTheme(t.tokens)
}

func buildHuhTheme(pal tokens) *huh.Theme {
	theme := huh.ThemeBase()
	accent := lipgloss.Color(pal.accent)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	value := lipgloss.Color(pal.value)
	header := lipgloss.Color(pal.header)
	err := lipgloss.Color(pal.error)

	theme.Group.Title = theme.Group.Title.Foreground(header).Bold(true)
	theme.Group.Description = theme.Group.Description.Foreground(muted)
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n\n")

	theme.Focused.Title = theme.Focused.Title.Foreground(label).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(err)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(err)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(value)
	theme.Focused.Option = theme.Focused.Option.Foreground(label)
	theme.Focused.NextIndicator = theme.Focused.NextIndicator.Foreground(label)
	theme.Focused.PrevIndicator = theme.Focused.PrevIndicator.Foreground(label)

	theme.Blurred = theme.Focused
	theme.Blurred.Base = theme.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	theme.Blurred.Card = theme.Blurred.Base
	return theme
}

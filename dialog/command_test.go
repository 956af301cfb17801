// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommandMenuExample(t *testing.T) {
	items := []MenuItem{
		{Tag: "1", Item: "Item #1"},
		{Tag: "2", Item: "Item #2"},
		{Tag: "3", Item: "Item #3"},
	}
	rows, err := menuArgs(items, Options{})
	require.NoError(t, err)
	args := append([]string{"Menu Test"}, dims(0, 0, 0)...)
	inv := BuildCommand("/usr/bin/dialog", Options{}, "menu", append(args, rows...), "/tmp/dialog-1")

	want := []string{
		"/usr/bin/dialog", "--menu", "Menu Test", "0", "0", "0",
		"1", "Item #1", "2", "Item #2", "3", "Item #3",
	}
	assert.Equal(t, want, inv.Argv)
	assert.Equal(t, append(want, "2>", "/tmp/dialog-1"), inv.Args())
	assert.Equal(t, `/usr/bin/dialog --menu 'Menu Test' 0 0 0 1 'Item #1' 2 'Item #2' 3 'Item #3' 2> /tmp/dialog-1`, inv.String())
}

func TestBuildCommandOptionsPrecedeWidget(t *testing.T) {
	opts := Options{Title: "Hello", Clear: true}
	inv := BuildCommand("dialog", opts, "--msgbox", []string{"hi", "0", "0"}, "")
	assert.Equal(t, []string{"dialog", "--clear", "--title", "Hello", "--msgbox", "hi", "0", "0"}, inv.Argv)
	assert.Equal(t, inv.Argv, inv.Args())
	assert.False(t, strings.Contains(inv.String(), "2>"))
}

func TestBuildCommandStdoutStream(t *testing.T) {
	inv := BuildCommand("dialog", Options{Stdout: true}, "inputbox", []string{"name", "0", "0"}, "/tmp/x")
	assert.Equal(t, StreamStdout, inv.Stream)
	assert.Equal(t, []string{"dialog", "--stdout", "--inputbox", "name", "0", "0", ">", "/tmp/x"}, inv.Args())
}

func TestBuildCommandEmptyItemsPassThrough(t *testing.T) {
	rows, err := listArgs(nil, Options{})
	require.NoError(t, err)
	inv := BuildCommand("dialog", Options{}, "checklist", append([]string{"none"}, append(dims(0, 0, 0), rows...)...), "")
	assert.Equal(t, []string{"dialog", "--checklist", "none", "0", "0", "0"}, inv.Argv)
}

func TestResolveExecutable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "dialog")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o644))

	got, err := resolveExecutable(exe, "", false)
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	var cfgErr *ConfigurationError
	_, err = resolveExecutable(filepath.Join(dir, "missing"), "", false)
	require.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = resolveExecutable(plain, "", false)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "is not executable", cfgErr.Reason)

	_, err = resolveExecutable(dir, "", false)
	require.True(t, errors.As(err, &cfgErr))

	t.Setenv("PATH", dir)
	got, err = resolveExecutable("", "dialog", false)
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = resolveExecutable("", "no-such-dialog", false)
	require.True(t, errors.As(err, &cfgErr))
}

func TestResolveExecutableDryRun(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	got, err := resolveExecutable("", "", true)
	require.NoError(t, err)
	assert.Equal(t, DefaultProgram, got)

	got, err = resolveExecutable("/nowhere/dialog", "", true)
	require.NoError(t, err)
	assert.Equal(t, "/nowhere/dialog", got)
}

func TestItemValidation(t *testing.T) {
	_, err := treeArgs([]TreeItem{{Tag: "a", Depth: -1}}, Options{})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = menuArgs([]MenuItem{{Item: "no tag"}}, Options{})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = formArgs([]FormField{{Label: "x", Kind: 4}}, true)
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = formArgs([]FormField{{Label: "x", Kind: FieldHidden | FieldReadonly}}, true)
	assert.NoError(t, err)
}

func TestItemColumns(t *testing.T) {
	withHelp := Options{ItemHelp: true}

	rows, err := listArgs([]ListItem{{Tag: "1", Item: "one", Status: true, Help: "h"}}, withHelp)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "one", "on", "h"}, rows)

	rows, err = listArgs([]ListItem{{Tag: "1", Item: "one", Help: "h"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "one", "off"}, rows)

	rows, err = treeArgs([]TreeItem{{Tag: "t", Item: "leaf", Depth: 2}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "leaf", "off", "2"}, rows)

	rows, err = menuArgs([]MenuItem{{Tag: "only"}}, Options{NoItems: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, rows)

	field := FormField{Label: "Name", LabelY: 1, LabelX: 1, Value: "bob", ValueY: 1, ValueX: 10, FieldLen: 20, InputLen: 0, Kind: FieldReadonly}
	rows, err = formArgs([]FormField{field}, false)
	require.NoError(t, err)
	assert.Len(t, rows, 8)
	rows, err = formArgs([]FormField{field}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "1", "1", "bob", "1", "10", "20", "0", "2"}, rows)

	assert.Equal(t, []string{"disk", GaugeDone, "net", "-40"}, gaugeArgs([]GaugeItem{
		{Label: "disk", Status: GaugeDone},
		{Label: "net", Status: GaugePercent(40)},
	}))
}

func TestParseGaugeStatus(t *testing.T) {
	for in, want := range map[string]string{
		"done":        GaugeDone,
		"In-Progress": GaugeInProgress,
		"n/a":         GaugeNA,
		"40":          "-40",
		"75%":         "-75",
	} {
		got, ok := ParseGaugeStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "sort of", "101", "-3"} {
		_, ok := ParseGaugeStatus(bad)
		assert.False(t, ok, bad)
	}
}

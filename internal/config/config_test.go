// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shayne/godialog/dialog"
)

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := Config{
		Path:    "/usr/local/bin/dialog",
		DryRun:  true,
		LogFile: "/tmp/godialog.log",
		Options: map[string]any{
			"backtitle": "Setup",
			"timeout":   30,
		},
	}

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "godialog"), filepath.Dir(path))

	require.NoError(t, Save(path, cfg))

	loaded, loadedPath, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, loadedPath)
	assert.Equal(t, cfg.Path, loaded.Path)
	assert.True(t, loaded.DryRun)
	assert.Equal(t, cfg.LogFile, loaded.LogFile)
	assert.Equal(t, "Setup", loaded.Options["backtitle"])
	assert.Equal(t, int64(30), loaded.Options["timeout"])
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.NotNil(t, cfg.Options)
	assert.Empty(t, cfg.Options)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("path = [unterminated"), 0o644))
	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`path = "/opt/dialog"
dry_run = true

[options]
backtitle = "Installer"
begin = [2, 4]
shadow = false
item_help = true
timeout = 15
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	cfg, _, err := Load(path)
	require.NoError(t, err)

	s := dialog.New()
	require.NoError(t, Apply(cfg, s))
	assert.Equal(t, "/opt/dialog", s.Path)
	assert.True(t, s.DryRun)
	assert.Equal(t, "Installer", s.Backtitle)
	assert.True(t, s.ItemHelp)
	assert.Equal(t, 15, s.Timeout)
	assert.Equal(t, &dialog.Position{Y: 2, X: 4}, s.Begin)
	require.NotNil(t, s.Shadow)
	assert.False(t, *s.Shadow)
}

func TestApplyRejectsUnknownOption(t *testing.T) {
	cfg := Config{Options: map[string]any{"colour": true}}
	assert.ErrorIs(t, Apply(cfg, dialog.New()), dialog.ErrUnknownOption)
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/shayne/godialog/dialog"
)

// Config holds session defaults read from config.toml.
type Config struct {
	// Path is an explicit dialog binary; empty means PATH lookup.
	Path    string `toml:"path,omitempty"`
	DryRun  bool   `toml:"dry_run,omitempty"`
	LogFile string `toml:"log_file,omitempty"`
	// Options is keyed by dialog flag name, e.g. "backtitle" or "begin".
	Options map[string]any `toml:"options,omitempty"`
}

// Load reads the config file at path, or at the default location when path
// is empty. A missing file is not an error. The resolved path is returned
// either way.
func Load(path string) (Config, string, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, "", err
		}
	}
	cfg, err := loadToml(path)
	if err == nil {
		return cfg, path, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Config{Options: map[string]any{}}, path, nil
	}
	return Config{}, path, err
}

func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath is config.toml under $XDG_CONFIG_HOME/godialog.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		var err error
		configHome, err = os.UserConfigDir()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(configHome, "godialog", "config.toml"), nil
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Options == nil {
		cfg.Options = map[string]any{}
	}
	return cfg, nil
}

// Apply copies cfg into s. Options are applied in name order so errors are
// reported deterministically.
func Apply(cfg Config, s *dialog.Session) error {
	if cfg.Path != "" {
		s.Path = cfg.Path
	}
	if cfg.DryRun {
		s.DryRun = true
	}
	names := make([]string, 0, len(cfg.Options))
	for name := range cfg.Options {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := s.Set(name, cfg.Options[name]); err != nil {
			return fmt.Errorf("config option %s: %w", name, err)
		}
	}
	return nil
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/godialog/internal/config"
	"github.com/shayne/godialog/internal/tui/theme"
	"github.com/shayne/yargs"
)

type configFlags struct {
	Config string   `flag:"config" help:"config file to show or edit"`
	Path   string   `flag:"path" help:"save the dialog executable to run"`
	Log    string   `flag:"log" help:"save a debug log file"`
	Set    []string `flag:"set" help:"save a dialog option as name=value (repeatable)"`
	Unset  []string `flag:"unset" help:"remove a saved option (repeatable)"`
}

func handleConfig(args []string, st streams) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags

	cfg, path, err := config.Load(flags.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	changed, err := updateConfig(&cfg, flags)
	if err != nil {
		return err
	}
	if changed {
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	preview := dialog.New()
	if err := config.Apply(cfg, preview); err != nil {
		return newUsageError(err.Error())
	}
	printConfig(st.out, commandTheme(st.out), path, cfg, preview)
	return nil
}

// updateConfig applies the edit flags to cfg and reports whether anything
// changed. Each --set is checked against the option table before it is
// stored.
func updateConfig(cfg *config.Config, flags configFlags) (bool, error) {
	changed := false
	if flags.Path != "" {
		cfg.Path = flags.Path
		changed = true
	}
	if flags.Log != "" {
		cfg.LogFile = flags.Log
		changed = true
	}
	if cfg.Options == nil {
		cfg.Options = map[string]any{}
	}
	for _, name := range flags.Unset {
		key := optionKey(name)
		if _, ok := cfg.Options[key]; ok {
			delete(cfg.Options, key)
			changed = true
		}
	}
	if len(flags.Set) == 0 {
		return changed, nil
	}
	preview := dialog.New()
	if err := config.Apply(*cfg, preview); err != nil {
		return false, newUsageError(err.Error())
	}
	for _, kv := range flags.Set {
		key, value, err := applySetFlag(&preview.Options, kv)
		if err != nil {
			return false, err
		}
		cfg.Options[key] = value
		changed = true
	}
	return changed, nil
}

func printConfig(out io.Writer, th theme.Theme, path string, cfg config.Config, s *dialog.Session) {
	label := func(name string) string {
		return th.CLI.Label.Render(name + ":")
	}
	fmt.Fprintf(out, "%s %s\n", label("config"), th.CLI.Value.Render(path))
	engine := cfg.Path
	if engine == "" {
		engine = dialog.DefaultProgram + " (from PATH)"
	}
	fmt.Fprintf(out, "%s %s\n", label("dialog"), th.CLI.Value.Render(engine))
	if cfg.LogFile != "" {
		fmt.Fprintf(out, "%s %s\n", label("log"), th.CLI.Value.Render(cfg.LogFile))
	}
	if cfg.DryRun {
		fmt.Fprintf(out, "%s %s\n", label("dry run"), th.CLI.Value.Render("on"))
	}
	if len(cfg.Options) == 0 {
		fmt.Fprintln(out, th.CLI.Muted.Render("no saved options"))
		return
	}
	fmt.Fprintln(out, th.CLI.Header.Render("options"))
	keys := make([]string, 0, len(cfg.Options))
	for key := range cfg.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s = %s\n", th.CLI.Flag.Render(key), th.CLI.Value.Render(fmt.Sprint(cfg.Options[key])))
	}
	if tokens := s.Tokens(); len(tokens) > 0 {
		fmt.Fprintf(out, "%s %s\n", label("flags"), th.CLI.Muted.Render(strings.TrimSpace(shellquote.Join(tokens...))))
	}
}

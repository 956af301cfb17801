// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/yargs"
)

type widgetFlags struct {
	Title      string   `flag:"title" short:"t" help:"title shown on the box border"`
	Backtitle  string   `flag:"backtitle" help:"title shown on the screen behind the box"`
	Height     int      `flag:"height" help:"box height in lines (0 sizes to fit)"`
	Width      int      `flag:"width" help:"box width in columns (0 sizes to fit)"`
	ListHeight int      `flag:"list-height" help:"visible rows for menus, lists and forms"`
	Separator  string   `flag:"separator" help:"separator between values in list results"`
	Set        []string `flag:"set" help:"set a dialog option as name=value (repeatable)"`
	DryRun     bool     `flag:"dry-run" short:"n" help:"print the dialog command instead of running it"`
	Path       string   `flag:"path" help:"dialog executable to run"`
	Log        string   `flag:"log" help:"append debug logs to this file"`
	Config     string   `flag:"config" help:"config file to read defaults from"`
}

// widgetRun is one parsed widget invocation from the command line.
type widgetRun struct {
	session *dialog.Session
	flags   widgetFlags
	args    []string
	in      io.Reader
	out     io.Writer
}

type widgetCommand struct {
	usage       string
	description string
	examples    []string
	// streaming widgets read their feed from stdin, so stdin need not be a
	// terminal.
	streaming bool
	run       func(w *widgetRun) (dialog.ExitCode, error)
}

var widgetCommands = map[string]widgetCommand{
	"msgbox": {
		usage:       "<text>",
		description: "Show a message with an OK button",
		examples:    []string{"godialog msgbox 'Backup finished'"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			text, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.session.MsgBox(text, w.flags.Height, w.flags.Width)
		},
	},
	"infobox": {
		usage:       "<text>",
		description: "Show a message and return immediately",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			text, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.session.InfoBox(text, w.flags.Height, w.flags.Width)
		},
	},
	"yesno": {
		usage:       "<text>",
		description: "Ask a yes/no question; exits 0 for yes",
		examples:    []string{"godialog yesno 'Delete the cache?' && rm -rf cache"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			text, err := w.text(0)
			if err != nil {
				return 0, err
			}
			if _, err := w.session.YesNo(text, w.flags.Height, w.flags.Width); err != nil {
				return 0, err
			}
			return w.session.ExitCode(), nil
		},
	},
	"textbox": {
		usage:       "<file>",
		description: "Show the contents of a file",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.session.TextBox(path, w.flags.Height, w.flags.Width)
		},
	},
	"tailbox": {
		usage:       "<file>",
		description: "Follow a growing file",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.session.TailBox(path, w.flags.Height, w.flags.Width)
		},
	},
	"tailboxbg": {
		usage:       "<file>",
		description: "Follow a growing file in the background",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.session.TailBoxBG(path, w.flags.Height, w.flags.Width)
		},
	},
	"pause": {
		usage:       "<text> <seconds>",
		description: "Show a message with a countdown",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(2, 2); err != nil {
				return 0, err
			}
			secs, err := w.intArg(1, "seconds")
			if err != nil {
				return 0, err
			}
			return w.session.Pause(w.args[0], secs, w.flags.Height, w.flags.Width)
		},
	},
	"prgbox": {
		usage:       "<command> [<text>]",
		description: "Run a shell command and show its output",
		examples:    []string{"godialog prgbox 'df -h'"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			return w.session.PrgBox(w.args[0], w.flags.Height, w.flags.Width, w.optional(1))
		},
	},
	"inputbox": {
		usage:       "<text> [<init>]",
		description: "Ask for a line of text",
		examples:    []string{"name=$(godialog inputbox 'Your name?')"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			value, err := w.session.InputBox(w.args[0], w.optional(1), w.flags.Height, w.flags.Width)
			return w.printLine(value, err)
		},
	},
	"passwordbox": {
		usage:       "<text> [<init>]",
		description: "Ask for a secret without echoing it",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			value, err := w.session.PasswordBox(w.args[0], w.optional(1), w.flags.Height, w.flags.Width)
			return w.printLine(value, err)
		},
	},
	"fselect": {
		usage:       "<path>",
		description: "Pick a file",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.printLine(w.session.FSelect(path, w.flags.Height, w.flags.Width))
		},
	},
	"dselect": {
		usage:       "<path>",
		description: "Pick a directory",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			return w.printLine(w.session.DSelect(path, w.flags.Height, w.flags.Width))
		},
	},
	"editbox": {
		usage:       "<file>",
		description: "Edit a file and print the result",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			path, err := w.text(0)
			if err != nil {
				return 0, err
			}
			content, err := w.session.EditBox(path, w.flags.Height, w.flags.Width)
			if err != nil {
				return 0, err
			}
			fmt.Fprint(w.out, content)
			return w.session.ExitCode(), nil
		},
	},
	"menu": {
		usage:       "<text> <tag> <item> [<tag> <item>...]",
		description: "Pick one entry from a menu",
		examples: []string{
			"godialog menu 'Pick a shell' bash Bash zsh Zsh fish Fish",
			"godialog menu --set item-help=true 'Pick' a Alpha 'first letter'",
		},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.menuItems()
			if err != nil {
				return 0, err
			}
			return w.printLine(w.session.Menu(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"inputmenu": {
		usage:       "<text> <tag> <item> [<tag> <item>...]",
		description: "Pick or rename a menu entry",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.menuItems()
			if err != nil {
				return 0, err
			}
			res, err := w.session.InputMenu(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight)
			if err != nil {
				return 0, err
			}
			switch {
			case res.Renamed:
				fmt.Fprintf(w.out, "%s\t%s\n", res.Tag, res.Text)
			case res.Tag != "":
				fmt.Fprintln(w.out, res.Tag)
			}
			return w.session.ExitCode(), nil
		},
	},
	"radiolist": {
		usage:       "<text> <tag> <item> on|off [...]",
		description: "Pick one entry from a list of radio buttons",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.listItems()
			if err != nil {
				return 0, err
			}
			return w.printLine(w.session.RadioList(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"checklist": {
		usage:       "<text> <tag> <item> on|off [...]",
		description: "Pick any number of entries; prints one tag per line",
		examples:    []string{"godialog checklist 'Toppings' cheese Cheese on olives Olives off"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.listItems()
			if err != nil {
				return 0, err
			}
			return w.printLines(w.session.Checklist(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"buildlist": {
		usage:       "<text> <tag> <item> on|off [...]",
		description: "Build an ordered selection; prints one tag per line",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.listItems()
			if err != nil {
				return 0, err
			}
			return w.printLines(w.session.Buildlist(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"treeview": {
		usage:       "<text> <tag> <item> on|off <depth> [...]",
		description: "Pick one entry from a tree",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			items, err := w.treeItems()
			if err != nil {
				return 0, err
			}
			return w.printLine(w.session.TreeView(w.args[0], items, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"form": {
		usage:       "<text> <label> <value> [<label> <value>...]",
		description: "Fill in labelled fields; prints label=value lines",
		examples:    []string{"godialog form 'Account' User \"$USER\" Shell /bin/sh"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			fields, err := w.formFields(false)
			if err != nil {
				return 0, err
			}
			return w.printForm(w.session.Form(w.args[0], fields, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"passwordform": {
		usage:       "<text> <label> <value> [<label> <value>...]",
		description: "Fill in fields that are all hidden",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			fields, err := w.formFields(false)
			if err != nil {
				return 0, err
			}
			return w.printForm(w.session.PasswordForm(w.args[0], fields, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"mixedform": {
		usage:       "<text> <label> <value> <kind> [...]",
		description: "Fill in fields; kind is plain, hidden, readonly or a number",
		examples:    []string{"godialog mixedform 'Login' User admin readonly Password '' hidden"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			fields, err := w.formFields(true)
			if err != nil {
				return 0, err
			}
			return w.printForm(w.session.MixedForm(w.args[0], fields, w.flags.Height, w.flags.Width, w.flags.ListHeight))
		},
	},
	"calendar": {
		usage:       "<text> [<dd/mm/yyyy>]",
		description: "Pick a date; prints YYYY-MM-DD",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			initial, err := w.timeArg(1, "2/1/2006", "date")
			if err != nil {
				return 0, err
			}
			date, err := w.session.Calendar(w.args[0], w.flags.Height, w.flags.Width, initial)
			if err != nil {
				return 0, err
			}
			if !date.IsZero() {
				fmt.Fprintln(w.out, date.Format(time.DateOnly))
			}
			return w.session.ExitCode(), nil
		},
	},
	"timebox": {
		usage:       "<text> [<hh:mm:ss>]",
		description: "Pick a time of day; prints HH:MM:SS",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			initial, err := w.timeArg(1, time.TimeOnly, "time")
			if err != nil {
				return 0, err
			}
			tod, err := w.session.TimeBox(w.args[0], w.flags.Height, w.flags.Width, initial)
			if err != nil {
				return 0, err
			}
			if w.session.ExitCode() == dialog.ExitOK && !w.session.DryRun {
				fmt.Fprintln(w.out, tod)
			}
			return w.session.ExitCode(), nil
		},
	},
	"rangebox": {
		usage:       "<text> <min> <max> [<default>]",
		description: "Pick a number with a slider",
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(3, 4); err != nil {
				return 0, err
			}
			lo, err := w.intArg(1, "min")
			if err != nil {
				return 0, err
			}
			hi, err := w.intArg(2, "max")
			if err != nil {
				return 0, err
			}
			def := lo
			if len(w.args) == 4 {
				if def, err = w.intArg(3, "default"); err != nil {
					return 0, err
				}
			}
			n, err := w.session.RangeBox(w.args[0], w.flags.Height, w.flags.Width, lo, hi, def)
			if err != nil {
				return 0, err
			}
			if w.session.ExitCode() == dialog.ExitOK && !w.session.DryRun {
				fmt.Fprintln(w.out, n)
			}
			return w.session.ExitCode(), nil
		},
	},
	"gauge": {
		usage:       "<text> [<percent>]",
		description: "Show a progress bar fed from stdin",
		examples: []string{
			"seq 0 10 100 | godialog gauge 'Copying'",
			"printf 'XXX\\n50\\nHalf way\\nXXX\\n' | godialog gauge 'Copying'",
		},
		streaming: true,
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(1, 2); err != nil {
				return 0, err
			}
			percent := 0
			if len(w.args) == 2 {
				var err error
				if percent, err = w.intArg(1, "percent"); err != nil {
					return 0, err
				}
			}
			return w.session.Gauge(w.args[0], w.flags.Height, w.flags.Width, percent, func(g *dialog.GaugeWriter) error {
				return w.forward(g)
			})
		},
	},
	"progressbox": {
		usage:       "[<text>]",
		description: "Show stdin as it arrives",
		examples:    []string{"make 2>&1 | godialog progressbox 'Building'"},
		streaming:   true,
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(0, 1); err != nil {
				return 0, err
			}
			return w.session.ProgressBox(w.optional(0), w.flags.Height, w.flags.Width, w.forward)
		},
	},
	"programbox": {
		usage:       "[<text>]",
		description: "Show stdin as it arrives, then wait for OK",
		streaming:   true,
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if err := w.arity(0, 1); err != nil {
				return 0, err
			}
			return w.session.ProgramBox(w.optional(0), w.flags.Height, w.flags.Width, w.forward)
		},
	},
	"mixedgauge": {
		usage:       "<text> <percent> [<label> <status>...]",
		description: "Show an overall bar with per-step states",
		examples:    []string{"godialog mixedgauge 'Deploy' 40 Build done Test in_progress Ship 0"},
		run: func(w *widgetRun) (dialog.ExitCode, error) {
			if len(w.args) < 2 {
				return 0, w.usage()
			}
			percent, err := w.intArg(1, "percent")
			if err != nil {
				return 0, err
			}
			rows, err := w.rows(w.args[2:], 2)
			if err != nil {
				return 0, err
			}
			items := make([]dialog.GaugeItem, 0, len(rows))
			for _, row := range rows {
				status, ok := dialog.ParseGaugeStatus(row[1])
				if !ok {
					return 0, newUsageError(fmt.Sprintf("invalid status %q for %s", row[1], row[0]))
				}
				items = append(items, dialog.GaugeItem{Label: row[0], Status: status})
			}
			return w.session.MixedGauge(w.args[0], w.flags.Height, w.flags.Width, percent, items)
		},
	},
}

func handleWidget(cmd widgetCommand, args []string, st streams) error {
	if hasHelpFlag(args) {
		_, err := yargs.ParseAndHandleHelp[struct{}, widgetFlags, struct{}](args, helpConfig)
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	name := ""
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	parsed, err := yargs.ParseFlags[widgetFlags](args)
	if err != nil {
		return newUsageError(err.Error())
	}
	flags := parsed.Flags
	session, closeLog, err := newSession(flags, st)
	if err != nil {
		return err
	}
	defer closeLog()

	if !session.DryRun && !cmd.streaming && !isTerminal(st.in) {
		return newUsageError(fmt.Sprintf("godialog %s needs a terminal on stdin", name))
	}
	w := &widgetRun{
		session: session,
		flags:   flags,
		args:    parsed.Args,
		in:      st.in,
		out:     st.out,
	}
	code, err := cmd.run(w)
	if err != nil {
		var usageErr usageError
		if errors.As(err, &usageErr) && usageErr.message == "" {
			return newUsageError(fmt.Sprintf("Usage: godialog %s %s", name, cmd.usage))
		}
		return err
	}
	if session.DryRun {
		fmt.Fprintln(st.out, renderCommand(commandTheme(st.out), session.LastCommand()))
		return nil
	}
	if code != dialog.ExitOK {
		return exitStatusError{code: code}
	}
	return nil
}

// usage returns a placeholder that handleWidget expands into the usage line.
func (w *widgetRun) usage() error {
	return usageError{}
}

func (w *widgetRun) arity(lo, hi int) error {
	if len(w.args) < lo || len(w.args) > hi {
		return w.usage()
	}
	return nil
}

func (w *widgetRun) text(i int) (string, error) {
	if err := w.arity(i+1, i+1); err != nil {
		return "", err
	}
	return w.args[i], nil
}

func (w *widgetRun) optional(i int) string {
	if i < len(w.args) {
		return w.args[i]
	}
	return ""
}

func (w *widgetRun) intArg(i int, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(w.args[i]))
	if err != nil {
		return 0, newUsageError(fmt.Sprintf("%s must be a number, got %q", name, w.args[i]))
	}
	return n, nil
}

func (w *widgetRun) timeArg(i int, layout, name string) (time.Time, error) {
	if i >= len(w.args) {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, w.args[i], time.Local)
	if err != nil {
		return time.Time{}, newUsageError(fmt.Sprintf("invalid %s %q", name, w.args[i]))
	}
	return t, nil
}

// rows splits item arguments into rows of n columns.
func (w *widgetRun) rows(args []string, n int) ([][]string, error) {
	if len(args)%n != 0 {
		return nil, newUsageError(fmt.Sprintf("items need %d values each, got %d values", n, len(args)))
	}
	out := make([][]string, 0, len(args)/n)
	for i := 0; i < len(args); i += n {
		out = append(out, args[i:i+n])
	}
	return out, nil
}

// itemRows reads the rows after the text argument. base is the number of
// columns before any item or help text.
func (w *widgetRun) itemRows(base int) ([][]string, error) {
	if len(w.args) < 1 {
		return nil, w.usage()
	}
	n := base
	if !w.session.NoItems {
		n++
	}
	if w.session.ItemHelp {
		n++
	}
	rows, err := w.rows(w.args[1:], n)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, newUsageError("at least one item is required")
	}
	return rows, nil
}

// columns walks a row in order: tag, then item unless items are hidden.
type columns struct {
	row []string
	i   int
}

func (c *columns) next() string {
	v := c.row[c.i]
	c.i++
	return v
}

func (w *widgetRun) itemText(c *columns) string {
	if w.session.NoItems {
		return ""
	}
	return c.next()
}

func (w *widgetRun) helpText(c *columns) string {
	if !w.session.ItemHelp {
		return ""
	}
	return c.next()
}

func (w *widgetRun) menuItems() ([]dialog.MenuItem, error) {
	rows, err := w.itemRows(1)
	if err != nil {
		return nil, err
	}
	items := make([]dialog.MenuItem, 0, len(rows))
	for _, row := range rows {
		c := &columns{row: row}
		item := dialog.MenuItem{Tag: c.next()}
		item.Item = w.itemText(c)
		item.Help = w.helpText(c)
		items = append(items, item)
	}
	return items, nil
}

func (w *widgetRun) listItems() ([]dialog.ListItem, error) {
	rows, err := w.itemRows(2)
	if err != nil {
		return nil, err
	}
	items := make([]dialog.ListItem, 0, len(rows))
	for _, row := range rows {
		c := &columns{row: row}
		item := dialog.ListItem{Tag: c.next()}
		item.Item = w.itemText(c)
		status, err := parseOnOff(c.next())
		if err != nil {
			return nil, err
		}
		item.Status = status
		item.Help = w.helpText(c)
		items = append(items, item)
	}
	return items, nil
}

func (w *widgetRun) treeItems() ([]dialog.TreeItem, error) {
	rows, err := w.itemRows(3)
	if err != nil {
		return nil, err
	}
	items := make([]dialog.TreeItem, 0, len(rows))
	for _, row := range rows {
		c := &columns{row: row}
		item := dialog.TreeItem{Tag: c.next()}
		item.Item = w.itemText(c)
		status, err := parseOnOff(c.next())
		if err != nil {
			return nil, err
		}
		item.Status = status
		depth, err := strconv.Atoi(c.next())
		if err != nil {
			return nil, newUsageError(fmt.Sprintf("depth for %s must be a number", item.Tag))
		}
		item.Depth = depth
		item.Help = w.helpText(c)
		items = append(items, item)
	}
	return items, nil
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, newUsageError(fmt.Sprintf("status must be on or off, got %q", value))
}

const defaultFieldLen = 30

// formFields lays fields out one per row with values aligned after the
// longest label.
func (w *widgetRun) formFields(mixed bool) ([]dialog.FormField, error) {
	if len(w.args) < 1 {
		return nil, w.usage()
	}
	n := 2
	if mixed {
		n = 3
	}
	rows, err := w.rows(w.args[1:], n)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, newUsageError("at least one field is required")
	}
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len([]rune(row[0])))
	}
	fields := make([]dialog.FormField, 0, len(rows))
	for i, row := range rows {
		field := dialog.FormField{
			Label:    row[0],
			LabelY:   i + 1,
			LabelX:   1,
			Value:    row[1],
			ValueY:   i + 1,
			ValueX:   labelWidth + 3,
			FieldLen: defaultFieldLen,
		}
		if mixed {
			kind, err := parseFieldKind(row[2])
			if err != nil {
				return nil, err
			}
			field.Kind = kind
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func parseFieldKind(value string) (dialog.FieldKind, error) {
	switch strings.ToLower(value) {
	case "plain", "":
		return dialog.FieldPlain, nil
	case "hidden":
		return dialog.FieldHidden, nil
	case "readonly":
		return dialog.FieldReadonly, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, newUsageError(fmt.Sprintf("field kind must be plain, hidden, readonly or a number, got %q", value))
	}
	return dialog.FieldKind(n), nil
}

// forward copies stdin to a streaming widget's feed.
func (w *widgetRun) forward(dst io.Writer) error {
	_, err := io.Copy(dst, w.in)
	return err
}

func (w *widgetRun) printLine(value string, err error) (dialog.ExitCode, error) {
	if err != nil {
		return 0, err
	}
	if value != "" {
		fmt.Fprintln(w.out, value)
	}
	return w.session.ExitCode(), nil
}

func (w *widgetRun) printLines(values []string, err error) (dialog.ExitCode, error) {
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		fmt.Fprintln(w.out, v)
	}
	return w.session.ExitCode(), nil
}

func (w *widgetRun) printForm(values dialog.FormValues, err error) (dialog.ExitCode, error) {
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		fmt.Fprintf(w.out, "%s=%s\n", v.Label, v.Value)
	}
	return w.session.ExitCode(), nil
}

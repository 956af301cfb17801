// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shayne/godialog/dialog"
	"github.com/shayne/godialog/internal/tui"
	"github.com/shayne/yargs"
)

type sample struct {
	name        string
	description string
	run         func(s *dialog.Session, out io.Writer) error
}

// sleep paces the animated samples.
var sleep = time.Sleep

var samples = []sample{
	{name: "menu", description: "Pick one entry from a menu", run: sampleMenu},
	{name: "checklist", description: "Toggle several entries", run: sampleChecklist},
	{name: "form", description: "Fill in a small form", run: sampleForm},
	{name: "mixedgauge", description: "Per-step progress with every status", run: sampleMixedGauge},
	{name: "gauge", description: "A progress bar fed from Go", run: sampleGauge},
	{name: "calendar", description: "Pick a date", run: sampleCalendar},
}

func findSample(name string) (sample, bool) {
	for _, smp := range samples {
		if smp.name == name {
			return smp, true
		}
	}
	return sample{}, false
}

func handleSamples(args []string, st streams) error {
	if hasHelpFlag(args) {
		_, err := yargs.ParseAndHandleHelp[struct{}, widgetFlags, struct{}](args, helpConfig)
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	if len(args) > 0 {
		args = args[1:]
	}
	parsed, err := yargs.ParseFlags[widgetFlags](args)
	if err != nil {
		return newUsageError(err.Error())
	}
	if len(parsed.Args) > 1 {
		return newUsageError("Usage: godialog samples [<name>]")
	}
	name := ""
	if len(parsed.Args) == 1 {
		name = strings.TrimSpace(parsed.Args[0])
	}
	if name == "" {
		options := make([]tui.SelectOption, 0, len(samples))
		for _, smp := range samples {
			options = append(options, tui.SelectOption{
				Label: fmt.Sprintf("%-11s %s", smp.name, smp.description),
				Value: smp.name,
			})
		}
		name, err = tui.PromptSelect(st.in, st.err, "Samples", "Pick a widget to try.", options, samples[0].name)
		if errors.Is(err, tui.ErrCancelled) {
			return newSilentError(err)
		}
		if err != nil {
			return err
		}
	}
	smp, ok := findSample(name)
	if !ok {
		names := make([]string, 0, len(samples))
		for _, s := range samples {
			names = append(names, s.name)
		}
		return newUsageError(fmt.Sprintf("unknown sample %q (want one of %s)", name, strings.Join(names, ", ")))
	}

	session, closeLog, err := newSession(parsed.Flags, st)
	if err != nil {
		return err
	}
	defer closeLog()
	if !session.DryRun && !isTerminal(st.in) {
		return newUsageError("godialog samples needs a terminal on stdin")
	}
	if err := smp.run(session, st.out); err != nil {
		return err
	}
	if session.DryRun {
		fmt.Fprintln(st.out, renderCommand(commandTheme(st.out), session.LastCommand()))
		return nil
	}
	code := session.ExitCode()
	fmt.Fprintf(st.err, "%s closed with %s\n", smp.name, renderExit(commandTheme(st.err), code))
	return nil
}

func sampleMenu(s *dialog.Session, out io.Writer) error {
	defaultTitle(s, "MENU BOX")
	items := []dialog.MenuItem{
		{Tag: "1", Item: "Item #1"},
		{Tag: "2", Item: "Item #2"},
		{Tag: "3", Item: "Item #3"},
	}
	tag, err := s.Menu("Menu Test", items, 0, 0, 0)
	if err != nil {
		return err
	}
	if tag != "" {
		fmt.Fprintf(out, "selected %s\n", tag)
	}
	return nil
}

func sampleChecklist(s *dialog.Session, out io.Writer) error {
	defaultTitle(s, "CHECKLIST BOX")
	items := []dialog.ListItem{
		{Tag: "Apple", Item: "It's an apple", Status: false},
		{Tag: "Dog", Item: "No it's not my dog", Status: true},
		{Tag: "Orange", Item: "Yeah! it is juicy", Status: false},
		{Tag: "Chicken", Item: "Normally not a pet", Status: true},
		{Tag: "Cat", Item: "No, never put a dog and a cat together", Status: false},
	}
	tags, err := s.Checklist("Which of the following are fruits?", items, 0, 0, 0)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		fmt.Fprintln(out, tag)
	}
	return nil
}

func sampleForm(s *dialog.Session, out io.Writer) error {
	defaultTitle(s, "FORM BOX")
	s.Insecure = true
	fields := []dialog.FormField{
		{Label: "Name:", LabelY: 1, LabelX: 1, Value: "John Doe", ValueY: 1, ValueX: 12, FieldLen: 30, InputLen: 40},
		{Label: "Address:", LabelY: 2, LabelX: 1, Value: "1 Main St", ValueY: 2, ValueX: 12, FieldLen: 30, InputLen: 40},
		{Label: "Password:", LabelY: 3, LabelX: 1, ValueY: 3, ValueX: 12, FieldLen: 30, InputLen: 40, Kind: dialog.FieldHidden},
		{Label: "Created:", LabelY: 4, LabelX: 1, Value: time.Now().Format(time.DateOnly), ValueY: 4, ValueX: 12, FieldLen: 30, Kind: dialog.FieldReadonly},
	}
	values, err := s.Form("Fill in the account details.", fields, 0, 0, 0)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintf(out, "%s %s\n", v.Label, v.Value)
	}
	return nil
}

const mixedGaugeText = `Hi, this is a mixedgauge box. You can use this to
present a list of progress for the user to view.
Supported states are succeeded, failed, passed, completed,
done, skipped, in_progress, checked and 0-100 for percent.`

func sampleMixedGauge(s *dialog.Session, _ io.Writer) error {
	defaultTitle(s, "MIXEDGAUGE BOX")
	for percent := 0; percent <= 100; percent += 10 {
		items := []dialog.GaugeItem{
			{Label: "Process One", Status: dialog.GaugeSucceeded},
			{Label: "Process Two", Status: dialog.GaugeFailed},
			{Label: "Process Three", Status: dialog.GaugePassed},
			{Label: "Process Four", Status: dialog.GaugeCompleted},
			{Label: "Process Five", Status: dialog.GaugeDone},
			{Label: "Process Six", Status: dialog.GaugeSkipped},
			{Label: "Process Seven", Status: dialog.GaugeInProgress},
			{Label: "Process Eight", Status: dialog.GaugeChecked},
			{Label: "Process Nine", Status: dialog.GaugePercent(percent)},
		}
		if _, err := s.MixedGauge(mixedGaugeText, 0, 0, 75, items); err != nil {
			return err
		}
		if s.DryRun {
			return nil
		}
		sleep(500 * time.Millisecond)
	}
	return nil
}

func sampleGauge(s *dialog.Session, _ io.Writer) error {
	defaultTitle(s, "GAUGE BOX")
	_, err := s.Gauge("Working through the queue", 0, 0, 0, func(g *dialog.GaugeWriter) error {
		for percent := 0; percent <= 100; percent += 10 {
			if err := g.Update(percent, fmt.Sprintf("Step %d of 10", percent/10)); err != nil {
				return err
			}
			sleep(200 * time.Millisecond)
		}
		return nil
	})
	return err
}

func sampleCalendar(s *dialog.Session, out io.Writer) error {
	defaultTitle(s, "CALENDAR BOX")
	date, err := s.Calendar("Pick a date", 0, 0, time.Now())
	if err != nil {
		return err
	}
	if !date.IsZero() {
		fmt.Fprintln(out, date.Format(time.DateOnly))
	}
	return nil
}

func defaultTitle(s *dialog.Session, title string) {
	if s.Title == "" {
		s.Title = title
	}
}

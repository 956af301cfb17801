// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strconv"
	"strings"
)

// MenuItem is one row of a menu or inputmenu.
type MenuItem struct {
	Tag  string
	Item string
	// Help is shown on the bottom line when ItemHelp is set.
	Help string
}

// ListItem is one row of a checklist, radiolist or buildlist.
type ListItem struct {
	Tag    string
	Item   string
	Status bool
	Help   string
}

// TreeItem is one row of a treeview. Depth 0 is the root level.
type TreeItem struct {
	Tag    string
	Item   string
	Status bool
	Depth  int
	Help   string
}

// FieldKind selects how a form field behaves. The bits combine.
type FieldKind int

const (
	FieldPlain    FieldKind = 0
	FieldHidden   FieldKind = 1
	FieldReadonly FieldKind = 2
)

func (k FieldKind) valid() bool {
	return k&^(FieldHidden|FieldReadonly) == 0
}

// FormField is one labelled input of a form. A FieldLen of zero makes the
// field display-only; a negative FieldLen makes it read-only with the
// absolute width. InputLen zero means FieldLen.
type FormField struct {
	Label    string
	LabelY   int
	LabelX   int
	Value    string
	ValueY   int
	ValueX   int
	FieldLen int
	InputLen int
	Kind     FieldKind
}

// GaugeItem is one row of a mixedgauge.
type GaugeItem struct {
	Label string
	// Status is one of the Gauge codes or the result of GaugePercent.
	Status string
}

// mixedgauge status codes.
const (
	GaugeSucceeded  = "0"
	GaugeFailed     = "1"
	GaugePassed     = "2"
	GaugeCompleted  = "3"
	GaugeChecked    = "4"
	GaugeDone       = "5"
	GaugeSkipped    = "6"
	GaugeInProgress = "7"
	GaugeBlank      = "8"
	GaugeNA         = "9"
)

// GaugePercent is the mixedgauge status showing n percent.
func GaugePercent(n int) string {
	return "-" + strconv.Itoa(n)
}

func invalidItem(i int, format string, args ...any) error {
	return fmt.Errorf("%w: row %d: %s", ErrInvalidItem, i, fmt.Sprintf(format, args...))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func menuArgs(items []MenuItem, opts Options) ([]string, error) {
	var out []string
	for i, item := range items {
		if item.Tag == "" {
			return nil, invalidItem(i, "empty tag")
		}
		out = append(out, item.Tag)
		if !opts.NoItems {
			out = append(out, item.Item)
		}
		if opts.ItemHelp {
			out = append(out, item.Help)
		}
	}
	return out, nil
}

func listArgs(items []ListItem, opts Options) ([]string, error) {
	var out []string
	for i, item := range items {
		if item.Tag == "" {
			return nil, invalidItem(i, "empty tag")
		}
		out = append(out, item.Tag)
		if !opts.NoItems {
			out = append(out, item.Item)
		}
		out = append(out, onOff(item.Status))
		if opts.ItemHelp {
			out = append(out, item.Help)
		}
	}
	return out, nil
}

func treeArgs(items []TreeItem, opts Options) ([]string, error) {
	var out []string
	for i, item := range items {
		if item.Tag == "" {
			return nil, invalidItem(i, "empty tag")
		}
		if item.Depth < 0 {
			return nil, invalidItem(i, "negative depth %d", item.Depth)
		}
		out = append(out, item.Tag)
		if !opts.NoItems {
			out = append(out, item.Item)
		}
		out = append(out, onOff(item.Status), strconv.Itoa(item.Depth))
		if opts.ItemHelp {
			out = append(out, item.Help)
		}
	}
	return out, nil
}

// formArgs flattens fields into eight columns, or nine when mixed.
func formArgs(fields []FormField, mixed bool) ([]string, error) {
	var out []string
	for i, f := range fields {
		if !f.Kind.valid() {
			return nil, invalidItem(i, "unknown field kind %d", int(f.Kind))
		}
		out = append(out,
			f.Label, strconv.Itoa(f.LabelY), strconv.Itoa(f.LabelX),
			f.Value, strconv.Itoa(f.ValueY), strconv.Itoa(f.ValueX),
			strconv.Itoa(f.FieldLen), strconv.Itoa(f.InputLen),
		)
		if mixed {
			out = append(out, strconv.Itoa(int(f.Kind)))
		}
	}
	return out, nil
}

func hasFieldKinds(fields []FormField) bool {
	for _, f := range fields {
		if f.Kind != FieldPlain {
			return true
		}
	}
	return false
}

func gaugeArgs(items []GaugeItem) []string {
	out := make([]string, 0, 2*len(items))
	for _, item := range items {
		out = append(out, item.Label, item.Status)
	}
	return out
}

var gaugeStatusNames = map[string]string{
	"succeeded":   GaugeSucceeded,
	"failed":      GaugeFailed,
	"passed":      GaugePassed,
	"completed":   GaugeCompleted,
	"checked":     GaugeChecked,
	"done":        GaugeDone,
	"skipped":     GaugeSkipped,
	"in_progress": GaugeInProgress,
	"blank":       GaugeBlank,
	"n/a":         GaugeNA,
}

// ParseGaugeStatus maps a status name ("done", "in_progress") or a
// percentage ("40", "40%") to the code mixedgauge expects.
func ParseGaugeStatus(s string) (string, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if code, ok := gaugeStatusNames[key]; ok {
		return code, true
	}
	n, err := strconv.Atoi(strings.TrimSuffix(key, "%"))
	if err != nil || n < 0 || n > 100 {
		return "", false
	}
	return GaugePercent(n), true
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a screen coordinate, row first, as dialog's --begin expects.
type Position struct {
	Y int
	X int
}

// Options holds the common options dialog accepts before the widget name.
// Zero values are left out of the command. Integers use 0 for "unset".
type Options struct {
	ASCIILines      bool
	Aspect          int
	Backtitle       string
	Begin           *Position
	CancelLabel     string
	Clear           bool
	Colors          bool
	ColumnSeparator string
	CRWrap          bool
	DateFormat      string
	DefaultNo       bool
	DefaultButton   string
	DefaultItem     string
	ExitLabel       string
	ExtraButton     bool
	ExtraLabel      string
	HelpButton      bool
	HelpLabel       string
	HelpStatus      bool
	HelpTags        bool
	HFile           string
	HLine           string
	Ignore          bool
	Insecure        bool
	ItemHelp        bool
	KeepTite        bool
	KeepWindow      bool
	LastKey         bool
	MaxInput        int
	NoCancel        bool
	NoCollapse      bool
	NoItems         bool
	NoKill          bool
	NoLabel         string
	NoLines         bool
	NoMouse         bool
	NoNLExpand      bool
	NoOK            bool
	NoTags          bool
	OKLabel         string
	// Separator and OutputSeparator are the same dialog option under two
	// names. OutputSeparator wins when both are set.
	Separator       string
	OutputSeparator string
	Quoted          bool
	Scrollbar       bool
	SeparateOutput  bool
	SeparateWidget  string
	// Shadow is tri-state: nil leaves dialog's default, false emits
	// --no-shadow.
	Shadow       *bool
	SingleQuoted bool
	SizeErr      bool
	Sleep        int
	// Stdout makes dialog write results to standard output instead of
	// standard error.
	Stdout     bool
	TabCorrect bool
	TabLen     int
	TimeFormat string
	Timeout    int
	Title      string
	Trace      string
	Trim       bool
	VisitItems bool
	YesLabel   string
}

type optionSpec struct {
	name   string
	tokens func(o *Options) []string
	set    func(o *Options, value any) error
}

// optionTable fixes the order options are serialized in.
var optionTable = []optionSpec{
	boolOption("ascii-lines", func(o *Options) *bool { return &o.ASCIILines }),
	intOption("aspect", func(o *Options) *int { return &o.Aspect }),
	stringOption("backtitle", func(o *Options) *string { return &o.Backtitle }),
	{name: "begin", tokens: beginTokens, set: setBegin},
	stringOption("cancel-label", func(o *Options) *string { return &o.CancelLabel }),
	boolOption("clear", func(o *Options) *bool { return &o.Clear }),
	boolOption("colors", func(o *Options) *bool { return &o.Colors }),
	stringOption("column-separator", func(o *Options) *string { return &o.ColumnSeparator }),
	boolOption("cr-wrap", func(o *Options) *bool { return &o.CRWrap }),
	stringOption("date-format", func(o *Options) *string { return &o.DateFormat }),
	boolOption("defaultno", func(o *Options) *bool { return &o.DefaultNo }),
	stringOption("default-button", func(o *Options) *string { return &o.DefaultButton }),
	stringOption("default-item", func(o *Options) *string { return &o.DefaultItem }),
	stringOption("exit-label", func(o *Options) *string { return &o.ExitLabel }),
	boolOption("extra-button", func(o *Options) *bool { return &o.ExtraButton }),
	stringOption("extra-label", func(o *Options) *string { return &o.ExtraLabel }),
	boolOption("help-button", func(o *Options) *bool { return &o.HelpButton }),
	stringOption("help-label", func(o *Options) *string { return &o.HelpLabel }),
	boolOption("help-status", func(o *Options) *bool { return &o.HelpStatus }),
	boolOption("help-tags", func(o *Options) *bool { return &o.HelpTags }),
	stringOption("hfile", func(o *Options) *string { return &o.HFile }),
	stringOption("hline", func(o *Options) *string { return &o.HLine }),
	boolOption("ignore", func(o *Options) *bool { return &o.Ignore }),
	boolOption("insecure", func(o *Options) *bool { return &o.Insecure }),
	boolOption("item-help", func(o *Options) *bool { return &o.ItemHelp }),
	boolOption("keep-tite", func(o *Options) *bool { return &o.KeepTite }),
	boolOption("keep-window", func(o *Options) *bool { return &o.KeepWindow }),
	boolOption("last-key", func(o *Options) *bool { return &o.LastKey }),
	intOption("max-input", func(o *Options) *int { return &o.MaxInput }),
	boolOption("no-cancel", func(o *Options) *bool { return &o.NoCancel }),
	boolOption("no-collapse", func(o *Options) *bool { return &o.NoCollapse }),
	boolOption("no-items", func(o *Options) *bool { return &o.NoItems }),
	boolOption("no-kill", func(o *Options) *bool { return &o.NoKill }),
	stringOption("no-label", func(o *Options) *string { return &o.NoLabel }),
	boolOption("no-lines", func(o *Options) *bool { return &o.NoLines }),
	boolOption("no-mouse", func(o *Options) *bool { return &o.NoMouse }),
	boolOption("no-nl-expand", func(o *Options) *bool { return &o.NoNLExpand }),
	boolOption("no-ok", func(o *Options) *bool { return &o.NoOK }),
	boolOption("no-tags", func(o *Options) *bool { return &o.NoTags }),
	stringOption("ok-label", func(o *Options) *string { return &o.OKLabel }),
	{name: "output-separator", tokens: separatorTokens, set: setString("output-separator", func(o *Options) *string { return &o.OutputSeparator })},
	{name: "separator", set: setString("separator", func(o *Options) *string { return &o.Separator })},
	boolOption("quoted", func(o *Options) *bool { return &o.Quoted }),
	boolOption("scrollbar", func(o *Options) *bool { return &o.Scrollbar }),
	boolOption("separate-output", func(o *Options) *bool { return &o.SeparateOutput }),
	stringOption("separate-widget", func(o *Options) *string { return &o.SeparateWidget }),
	{name: "shadow", tokens: shadowTokens, set: setShadow},
	boolOption("single-quoted", func(o *Options) *bool { return &o.SingleQuoted }),
	boolOption("size-err", func(o *Options) *bool { return &o.SizeErr }),
	intOption("sleep", func(o *Options) *int { return &o.Sleep }),
	boolOption("stdout", func(o *Options) *bool { return &o.Stdout }),
	boolOption("tab-correct", func(o *Options) *bool { return &o.TabCorrect }),
	intOption("tab-len", func(o *Options) *int { return &o.TabLen }),
	stringOption("time-format", func(o *Options) *string { return &o.TimeFormat }),
	intOption("timeout", func(o *Options) *int { return &o.Timeout }),
	stringOption("title", func(o *Options) *string { return &o.Title }),
	stringOption("trace", func(o *Options) *string { return &o.Trace }),
	boolOption("trim", func(o *Options) *bool { return &o.Trim }),
	boolOption("visit-items", func(o *Options) *bool { return &o.VisitItems }),
	stringOption("yes-label", func(o *Options) *string { return &o.YesLabel }),
}

// Tokens serializes the options in a fixed order. Values are separate argv
// elements and are not quoted.
func (o Options) Tokens() []string {
	var out []string
	for _, spec := range optionTable {
		if spec.tokens == nil {
			continue
		}
		out = append(out, spec.tokens(&o)...)
	}
	return out
}

// Set assigns an option by its dialog flag name ("cancel-label"); snake
// case ("cancel_label") is accepted too. Only the value's type is checked.
func (o *Options) Set(name string, value any) error {
	key := normalizeOptionName(name)
	for _, spec := range optionTable {
		if spec.name == key {
			return spec.set(o, value)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

// OptionNames lists every name Set accepts, in serialization order.
func OptionNames() []string {
	names := make([]string, 0, len(optionTable))
	for _, spec := range optionTable {
		names = append(names, spec.name)
	}
	return names
}

func normalizeOptionName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.TrimPrefix(name, "--")
	return strings.ReplaceAll(name, "_", "-")
}

func (o Options) separator() string {
	if o.OutputSeparator != "" {
		return o.OutputSeparator
	}
	return o.Separator
}

func boolOption(name string, field func(*Options) *bool) optionSpec {
	return optionSpec{
		name: name,
		tokens: func(o *Options) []string {
			if !*field(o) {
				return nil
			}
			return []string{"--" + name}
		},
		set: func(o *Options, value any) error {
			b, ok := value.(bool)
			if !ok {
				return typeError(name, "bool", value)
			}
			*field(o) = b
			return nil
		},
	}
}

func stringOption(name string, field func(*Options) *string) optionSpec {
	return optionSpec{
		name: name,
		tokens: func(o *Options) []string {
			if *field(o) == "" {
				return nil
			}
			return []string{"--" + name, *field(o)}
		},
		set: setString(name, field),
	}
}

func intOption(name string, field func(*Options) *int) optionSpec {
	return optionSpec{
		name: name,
		tokens: func(o *Options) []string {
			if *field(o) == 0 {
				return nil
			}
			return []string{"--" + name, strconv.Itoa(*field(o))}
		},
		set: func(o *Options, value any) error {
			n, ok := asInt(value)
			if !ok {
				return typeError(name, "integer", value)
			}
			*field(o) = n
			return nil
		},
	}
}

func setString(name string, field func(*Options) *string) func(*Options, any) error {
	return func(o *Options, value any) error {
		s, ok := value.(string)
		if !ok {
			return typeError(name, "string", value)
		}
		*field(o) = s
		return nil
	}
}

func beginTokens(o *Options) []string {
	if o.Begin == nil {
		return nil
	}
	return []string{"--begin", strconv.Itoa(o.Begin.Y), strconv.Itoa(o.Begin.X)}
}

func setBegin(o *Options, value any) error {
	switch v := value.(type) {
	case Position:
		o.Begin = &v
		return nil
	case *Position:
		o.Begin = v
		return nil
	case []int:
		if len(v) == 2 {
			o.Begin = &Position{Y: v[0], X: v[1]}
			return nil
		}
	case [2]int:
		o.Begin = &Position{Y: v[0], X: v[1]}
		return nil
	case []any:
		if len(v) == 2 {
			y, okY := asInt(v[0])
			x, okX := asInt(v[1])
			if okY && okX {
				o.Begin = &Position{Y: y, X: x}
				return nil
			}
		}
	}
	return typeError("begin", "pair of integers", value)
}

func separatorTokens(o *Options) []string {
	switch {
	case o.OutputSeparator != "":
		return []string{"--output-separator", o.OutputSeparator}
	case o.Separator != "":
		return []string{"--separator", o.Separator}
	default:
		return nil
	}
}

func shadowTokens(o *Options) []string {
	if o.Shadow == nil {
		return nil
	}
	if *o.Shadow {
		return []string{"--shadow"}
	}
	return []string{"--no-shadow"}
}

func setShadow(o *Options, value any) error {
	switch v := value.(type) {
	case bool:
		o.Shadow = &v
		return nil
	case *bool:
		o.Shadow = v
		return nil
	}
	return typeError("shadow", "bool", value)
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	default:
		return 0, false
	}
}

func typeError(name, want string, value any) error {
	return fmt.Errorf("option %s: want %s, got %T", name, want, value)
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
	"github.com/kballard/go-shellquote"
)

// firstLine returns the text before the first newline.
func firstLine(data []byte) string {
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(line, "\r")
}

// splitList decodes checklist and buildlist output. Order is preserved and
// empty fragments are dropped.
func splitList(data []byte, opts Options) []string {
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return []string{}
	}
	var parts []string
	unquote := opts.Quoted || opts.SingleQuoted
	switch sep := opts.separator(); {
	case opts.SeparateOutput:
		parts = strings.Split(text, "\n")
	case sep != "":
		parts = strings.Split(text, sep)
	default:
		words, err := shellquote.Split(text)
		if err != nil {
			words = strings.Fields(text)
			unquote = true
		} else {
			unquote = false
		}
		parts = words
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSuffix(part, "\r")
		if unquote {
			part = trimQuotes(part)
		}
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// FormValue is one form field and what the user entered in it.
type FormValue struct {
	Label string
	Value string
}

// FormValues keeps form results in field order.
type FormValues []FormValue

// Get returns the value of the first field with label.
func (v FormValues) Get(label string) (string, bool) {
	for _, fv := range v {
		if fv.Label == label {
			return fv.Value, true
		}
	}
	return "", false
}

// Map returns the values keyed by label. Later duplicates win.
func (v FormValues) Map() map[string]string {
	out := make(map[string]string, len(v))
	for _, fv := range v {
		out[fv.Label] = fv.Value
	}
	return out
}

// decodeForm pairs output lines with field labels, stopping at whichever
// runs out first.
func decodeForm(data []byte, fields []FormField, opts Options) FormValues {
	text := string(data)
	if text == "" {
		return FormValues{}
	}
	sep := opts.separator()
	if sep == "" {
		sep = "\n"
	} else {
		text = strings.TrimSuffix(text, "\n")
	}
	values := strings.Split(text, sep)
	if values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	n := min(len(values), len(fields))
	out := make(FormValues, 0, n)
	for i := range n {
		out = append(out, FormValue{
			Label: fields[i].Label,
			Value: strings.TrimSuffix(values[i], "\r"),
		})
	}
	return out
}

// parseDate reads calendar output. dialog prints dd/mm/yyyy unless a
// strftime format was requested with --date-format.
func parseDate(line string, opts Options) (time.Time, error) {
	line = strings.TrimSpace(line)
	if opts.DateFormat != "" {
		t, err := timefmt.ParseInLocation(line, opts.DateFormat, time.Local)
		if err != nil {
			return time.Time{}, &ParseError{Widget: "calendar", Input: line, Err: err}
		}
		return t, nil
	}
	fields := strings.Split(line, "/")
	if len(fields) != 3 {
		return time.Time{}, &ParseError{Widget: "calendar", Input: line, Err: errors.New("want day/month/year")}
	}
	nums, err := atoiAll(fields)
	if err != nil {
		return time.Time{}, &ParseError{Widget: "calendar", Input: line, Err: err}
	}
	day, month, year := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, &ParseError{Widget: "calendar", Input: line, Err: errors.New("date out of range")}
	}
	return t, nil
}

// TimeOfDay is the result of a timebox.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On returns the time of day on date's calendar day, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, date.Location())
}

// parseTime reads timebox output: hh:mm:ss, or --time-format when set.
func parseTime(line string, opts Options) (TimeOfDay, error) {
	line = strings.TrimSpace(line)
	if opts.TimeFormat != "" {
		t, err := timefmt.Parse(line, opts.TimeFormat)
		if err != nil {
			return TimeOfDay{}, &ParseError{Widget: "timebox", Input: line, Err: err}
		}
		return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
	}
	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return TimeOfDay{}, &ParseError{Widget: "timebox", Input: line, Err: errors.New("want hour:minute:second")}
	}
	nums, err := atoiAll(fields)
	if err != nil {
		return TimeOfDay{}, &ParseError{Widget: "timebox", Input: line, Err: err}
	}
	tod := TimeOfDay{Hour: nums[0], Minute: nums[1], Second: nums[2]}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 || tod.Second < 0 || tod.Second > 59 {
		return TimeOfDay{}, &ParseError{Widget: "timebox", Input: line, Err: errors.New("time out of range")}
	}
	return tod, nil
}

func parseRange(line string) (int, error) {
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &ParseError{Widget: "rangebox", Input: line, Err: err}
	}
	return n, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// InputMenuResult is what an inputmenu returns. Renamed is set when the
// user edited the entry's text with the Rename button.
type InputMenuResult struct {
	Tag     string
	Text    string
	Renamed bool
}

const renamedPrefix = "RENAMED "

// decodeInputMenu reads either a plain tag or "RENAMED <tag> <text>". Tags
// may contain spaces, so the longest known tag that fits wins.
func decodeInputMenu(line string, items []MenuItem) InputMenuResult {
	rest, ok := strings.CutPrefix(line, renamedPrefix)
	if !ok {
		return InputMenuResult{Tag: line}
	}
	best := -1
	for i, item := range items {
		if rest == item.Tag || strings.HasPrefix(rest, item.Tag+" ") {
			if best < 0 || len(item.Tag) > len(items[best].Tag) {
				best = i
			}
		}
	}
	if best >= 0 {
		tag := items[best].Tag
		return InputMenuResult{
			Tag:     tag,
			Text:    strings.TrimPrefix(strings.TrimPrefix(rest, tag), " "),
			Renamed: true,
		}
	}
	tag, text, _ := strings.Cut(rest, " ")
	return InputMenuResult{Tag: tag, Text: text, Renamed: true}
}

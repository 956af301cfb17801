// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitListChecklistOutputs(t *testing.T) {
	assert.Equal(t, []string{"1", "4"}, splitList([]byte(`"1" "4"`), Options{}))
	assert.Equal(t, []string{"1", "4"}, splitList([]byte("1|4"), Options{Separator: "|"}))
	assert.Equal(t, []string{"1", "4"}, splitList([]byte("1 4\n"), Options{}))
	assert.Equal(t, []string{"a b", "c"}, splitList([]byte(`"a b" c`), Options{}))
	assert.Equal(t, []string{"1", "4"}, splitList([]byte("1\n4\n"), Options{SeparateOutput: true}))
	assert.Equal(t, []string{"1", "4"}, splitList([]byte(`"1"|"4"`), Options{Separator: "|", Quoted: true}))
	assert.Equal(t, []string{}, splitList(nil, Options{}))
}

func TestSplitListUnbalancedQuotesFallBack(t *testing.T) {
	assert.Equal(t, []string{"1", `"4`}, splitList([]byte(`"1" "4`), Options{}))
}

func TestSplitListSeparatorRoundTrip(t *testing.T) {
	tags := []string{"alpha", "b c", "d-e", "f"}
	for _, sep := range []string{"|", ",", "::", "\t", "X"} {
		data := []byte(strings.Join(tags, sep))
		assert.Equal(t, tags, splitList(data, Options{OutputSeparator: sep}), "separator %q", sep)
	}
	assert.Equal(t, []string{"a", "b"}, splitList([]byte("|a||b|"), Options{Separator: "|"}))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "tag", firstLine([]byte("tag\nmore")))
	assert.Equal(t, "tag", firstLine([]byte("tag\r\n")))
	assert.Equal(t, "", firstLine(nil))
}

func TestDecodeFormZipsToShorter(t *testing.T) {
	fields := []FormField{{Label: "Name"}, {Label: "Shell"}, {Label: "Home"}}

	got := decodeForm([]byte("bob\n/bin/sh\n/home/bob\n"), fields, Options{})
	assert.Equal(t, FormValues{{"Name", "bob"}, {"Shell", "/bin/sh"}, {"Home", "/home/bob"}}, got)
	assert.Equal(t, map[string]string{"Name": "bob", "Shell": "/bin/sh", "Home": "/home/bob"}, got.Map())

	got = decodeForm([]byte("bob\n"), fields, Options{})
	assert.Equal(t, FormValues{{"Name", "bob"}}, got)
	v, ok := got.Get("Name")
	assert.True(t, ok)
	assert.Equal(t, "bob", v)
	_, ok = got.Get("Home")
	assert.False(t, ok)

	got = decodeForm([]byte("a\nb\nc\nd\n"), fields[:2], Options{})
	assert.Len(t, got, 2)

	got = decodeForm([]byte("bob||/home/bob|\n"), fields, Options{Separator: "|"})
	assert.Equal(t, FormValues{{"Name", "bob"}, {"Shell", ""}, {"Home", "/home/bob"}}, got)

	assert.Empty(t, decodeForm(nil, fields, Options{}))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("25/12/2015", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2015, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())

	got, err = parseDate("2015-12-25", Options{DateFormat: "%Y-%m-%d"})
	require.NoError(t, err)
	assert.True(t, time.Date(2015, time.December, 25, 0, 0, 0, 0, time.Local).Equal(got), "got %v", got)

	for _, bad := range []string{"", "25-12-2015", "xx/12/2015", "31/02/2015", "1/2"} {
		_, err := parseDate(bad, Options{})
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "input %q", bad)
		assert.Equal(t, "calendar", parseErr.Widget)
	}

	_, err = parseDate("25/12/2015", Options{DateFormat: "%Y-%m-%d"})
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("13:05:09", Options{})
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 5, Second: 9}, got)
	assert.Equal(t, "13:05:09", got.String())

	day := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2020, time.March, 1, 13, 5, 9, 0, time.UTC), got.On(day))

	got, err = parseTime("13.02.00", Options{TimeFormat: "%H.%M.%S"})
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 2}, got)

	for _, bad := range []string{"", "13:05", "25:00:00", "aa:bb:cc"} {
		_, err := parseTime(bad, Options{})
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "input %q", bad)
	}
}

func TestParseRange(t *testing.T) {
	n, err := parseRange("42\n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = parseRange("forty")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestDecodeInputMenu(t *testing.T) {
	items := []MenuItem{{Tag: "User"}, {Tag: "User ID"}, {Tag: "Shell"}}

	assert.Equal(t, InputMenuResult{Tag: "Shell"}, decodeInputMenu("Shell", items))
	assert.Equal(t,
		InputMenuResult{Tag: "User ID", Text: "1001", Renamed: true},
		decodeInputMenu("RENAMED User ID 1001", items))
	assert.Equal(t,
		InputMenuResult{Tag: "User", Text: "alice smith", Renamed: true},
		decodeInputMenu("RENAMED User alice smith", items))
	assert.Equal(t,
		InputMenuResult{Tag: "Other", Text: "x y", Renamed: true},
		decodeInputMenu("RENAMED Other x y", items))
}

func TestExitCodeClassification(t *testing.T) {
	assert.True(t, ExitCancel.IsCancel())
	assert.True(t, ExitESC.IsCancel())
	assert.False(t, ExitHelp.IsCancel())
	assert.Equal(t, "item-help", ExitItemHelp.String())
	assert.Equal(t, "exit 7", ExitCode(7).String())

	for _, kind := range []outputKind{outputOnOK, outputOnButtons, outputOnExtra} {
		assert.True(t, ExitOK.carriesOutput(kind))
		assert.False(t, ExitCancel.carriesOutput(kind))
		assert.False(t, ExitESC.carriesOutput(kind))
	}
	assert.False(t, ExitExtra.carriesOutput(outputOnOK))
	assert.True(t, ExitExtra.carriesOutput(outputOnButtons))
	assert.True(t, ExitExtra.carriesOutput(outputOnExtra))
	assert.True(t, ExitHelp.carriesOutput(outputOnButtons))
	assert.False(t, ExitHelp.carriesOutput(outputOnExtra))
	assert.False(t, ExitItemHelp.carriesOutput(outputOnExtra))
	assert.False(t, ExitHelp.carriesOutput(outputOnOK))
}

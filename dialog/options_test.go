// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"slices"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolOptionNames() []string {
	var names []string
	scratch := Options{}
	for _, spec := range optionTable {
		if spec.set(&scratch, true) == nil && spec.name != "shadow" {
			names = append(names, spec.name)
		}
	}
	return names
}

func TestBoolOptionsEmitExactlyOneFlag(t *testing.T) {
	names := boolOptionNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			var opts Options
			require.NoError(t, opts.Set(name, true))
			tokens := opts.Tokens()
			assert.Equal(t, 1, countOf(tokens, "--"+name))

			require.NoError(t, opts.Set(name, false))
			assert.NotContains(t, opts.Tokens(), "--"+name)
			assert.Empty(t, opts.Tokens())
		})
	}
}

func TestStringOptionsRoundTripThroughQuoting(t *testing.T) {
	values := []string{
		"plain",
		"two words",
		`it's "quoted"`,
		"sep|arated",
		"$HOME `tick` \\ back",
		"line\nbreak",
	}
	for _, name := range []string{"title", "backtitle", "ok-label", "column-separator", "hline"} {
		for _, value := range values {
			var opts Options
			require.NoError(t, opts.Set(name, value))
			inv := BuildCommand("/usr/bin/dialog", opts, "msgbox", []string{"hi", "0", "0"}, "/tmp/out")
			words, err := shellquote.Split(inv.String())
			require.NoError(t, err)
			i := slices.Index(words, "--"+name)
			require.GreaterOrEqual(t, i, 0, "%s missing from %q", name, inv.String())
			assert.Equal(t, value, words[i+1])
			assert.Equal(t, inv.Args(), words)
		}
	}
}

func TestTokensFollowFixedOrder(t *testing.T) {
	opts := Options{
		YesLabel:   "Sure",
		Title:      "T",
		Backtitle:  "B",
		ASCIILines: true,
		Begin:      &Position{Y: 2, X: 4},
		Timeout:    30,
	}
	want := []string{
		"--ascii-lines",
		"--backtitle", "B",
		"--begin", "2", "4",
		"--timeout", "30",
		"--title", "T",
		"--yes-label", "Sure",
	}
	assert.Equal(t, want, opts.Tokens())
	assert.Equal(t, opts.Tokens(), opts.Tokens())
}

func TestShadowIsTriState(t *testing.T) {
	var opts Options
	assert.Empty(t, opts.Tokens())

	require.NoError(t, opts.Set("shadow", true))
	assert.Equal(t, []string{"--shadow"}, opts.Tokens())

	require.NoError(t, opts.Set("shadow", false))
	assert.Equal(t, []string{"--no-shadow"}, opts.Tokens())
}

func TestSeparatorPrecedence(t *testing.T) {
	opts := Options{Separator: "|"}
	assert.Equal(t, []string{"--separator", "|"}, opts.Tokens())

	opts.OutputSeparator = ","
	assert.Equal(t, []string{"--output-separator", ","}, opts.Tokens())
	assert.Equal(t, ",", opts.separator())
}

func TestSetAcceptsNameVariants(t *testing.T) {
	var opts Options
	require.NoError(t, opts.Set("cancel_label", "Back"))
	require.NoError(t, opts.Set("--OK-LABEL", "Go"))
	require.NoError(t, opts.Set("max-input", int64(12)))
	require.NoError(t, opts.Set("begin", []any{int64(1), int64(3)}))
	assert.Equal(t, "Back", opts.CancelLabel)
	assert.Equal(t, "Go", opts.OKLabel)
	assert.Equal(t, 12, opts.MaxInput)
	assert.Equal(t, &Position{Y: 1, X: 3}, opts.Begin)
}

func TestSetRejectsUnknownAndMistyped(t *testing.T) {
	var opts Options
	err := opts.Set("no-such-option", true)
	require.ErrorIs(t, err, ErrUnknownOption)

	assert.Error(t, opts.Set("title", 3))
	assert.Error(t, opts.Set("clear", "yes"))
	assert.Error(t, opts.Set("timeout", "10"))
	assert.Error(t, opts.Set("begin", []int{1}))
	assert.Equal(t, Options{}, opts)
}

func TestSetErrorNamesTheOption(t *testing.T) {
	var opts Options
	for _, name := range []string{"title", "separator", "output-separator", "ok-label"} {
		err := opts.Set(name, 3)
		require.Error(t, err)
		assert.EqualError(t, err, "option "+name+": want string, got int")
	}
	assert.ErrorContains(t, opts.Set("clear", "yes"), "option clear:")
	assert.ErrorContains(t, opts.Set("timeout", "10"), "option timeout:")
}

func TestOptionNamesCoverTable(t *testing.T) {
	names := OptionNames()
	assert.Len(t, names, len(optionTable))
	for _, name := range names {
		assert.Equal(t, strings.ToLower(name), name)
	}
}

func countOf(tokens []string, want string) int {
	n := 0
	for _, tok := range tokens {
		if tok == want {
			n++
		}
	}
	return n
}

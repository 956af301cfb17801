// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleOptions = []SelectOption{
	{Label: "Menu", Value: "menu"},
	{Label: "Checklist", Value: "checklist"},
	{Value: "gauge"},
}

func TestPromptSelectByNumber(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptSelect(strings.NewReader("2\n"), &out, "Samples", "Pick one", sampleOptions, "")
	require.NoError(t, err)
	assert.Equal(t, "checklist", got)
	assert.Contains(t, out.String(), "Samples")
	assert.Contains(t, out.String(), "3) gauge")
}

func TestPromptSelectRetriesThenAcceptsName(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptSelect(strings.NewReader("9\nGAUGE\n"), &out, "", "", sampleOptions, "")
	require.NoError(t, err)
	assert.Equal(t, "gauge", got)
	assert.Contains(t, out.String(), "Please select one option")
}

func TestPromptSelectDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := PromptSelect(strings.NewReader("\n"), &out, "", "", sampleOptions, "menu")
	require.NoError(t, err)
	assert.Equal(t, "menu", got)
	assert.Contains(t, out.String(), "* 1) Menu")
}

func TestPromptSelectEOFCancels(t *testing.T) {
	_, err := PromptSelect(strings.NewReader(""), &bytes.Buffer{}, "", "", sampleOptions, "")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPromptSelectNoOptions(t *testing.T) {
	_, err := PromptSelect(strings.NewReader("1\n"), &bytes.Buffer{}, "", "", nil, "")
	assert.Error(t, err)
}

func TestIsInteractiveRejectsBuffers(t *testing.T) {
	assert.False(t, IsInteractive(strings.NewReader(""), &bytes.Buffer{}))
}

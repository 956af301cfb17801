// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("prompt cancelled")

type SelectOption struct {
	Label string
	Value string
}

// PromptSelect asks for one of options. On a terminal it shows a huh select;
// otherwise it prints a numbered list and reads a number from in.
func PromptSelect(in io.Reader, out io.Writer, title, description string, options []SelectOption, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options available")
	}
	if IsInteractive(in, out) {
		return promptSelectForm(in, out, title, description, options, defaultValue)
	}
	reader := bufio.NewReader(in)
	printPromptHeader(out, title, description)
	for i, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		marker := " "
		if opt.Value == defaultValue {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %d) %s\n", marker, i+1, label)
	}
	for {
		fmt.Fprint(out, "Select option: ")
		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrCancelled
			}
			return "", err
		}
		if strings.TrimSpace(line) == "" && defaultValue != "" {
			return defaultValue, nil
		}
		idx, ok := parseChoice(line, options)
		if !ok {
			fmt.Fprintln(out, "Please select one option by number or name.")
			continue
		}
		return options[idx].Value, nil
	}
}

// parseChoice accepts a 1-based option number or an option value.
func parseChoice(input string, options []SelectOption) (int, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(options) {
			return 0, false
		}
		return n - 1, true
	}
	for i, opt := range options {
		if strings.EqualFold(opt.Value, trimmed) {
			return i, true
		}
	}
	return 0, false
}

func promptSelectForm(in io.Reader, out io.Writer, title, description string, options []SelectOption, defaultValue string) (string, error) {
	choice := defaultValue
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		huhOptions = append(huhOptions, huh.NewOption(label, opt.Value))
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(huhOptions...).
				Value(&choice),
		),
	)
	form.WithInput(in).WithOutput(out).WithTheme(promptTheme(out))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return choice, nil
}

// IsInteractive reports whether in and out are both terminals.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}

func printPromptHeader(out io.Writer, title, description string) {
	if strings.TrimSpace(title) != "" {
		fmt.Fprintln(out, title)
	}
	if strings.TrimSpace(description) != "" {
		fmt.Fprintln(out, description)
	}
}

// readLine returns io.EOF only when nothing was read before end of input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

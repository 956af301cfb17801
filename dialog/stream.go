// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"io"
)

// GaugeWriter drives a running gauge.
type GaugeWriter struct {
	w io.Writer
}

// Update moves the meter to percent and replaces the prompt with message.
func (g *GaugeWriter) Update(percent int, message string) error {
	_, err := fmt.Fprintf(g.w, "XXX\n%d\n%s\nXXX\n", percent, message)
	return err
}

// Percent moves the meter without changing the prompt.
func (g *GaugeWriter) Percent(percent int) error {
	_, err := fmt.Fprintf(g.w, "%d\n", percent)
	return err
}

// Write passes raw bytes to the gauge.
func (g *GaugeWriter) Write(p []byte) (int, error) {
	return g.w.Write(p)
}

// Gauge shows a meter starting at percent and runs update while dialog
// reads from it. The gauge closes when update returns.
//
// update runs on the calling goroutine while s is busy with the gauge. It
// may read LastCommand and ExitCode and change Options for later calls, but
// it must not run another widget on s: that call waits for the gauge to
// close and never returns.
func (s *Session) Gauge(text string, height, width, percent int, update func(*GaugeWriter) error) (ExitCode, error) {
	return s.stream("gauge", append([]string{text}, dims(height, width, percent)...), func(w io.Writer) error {
		return update(&GaugeWriter{w: w})
	})
}

// ProgressBox shows everything write produces. It closes when write
// returns. Like the Gauge callback, write must not run widgets on s.
func (s *Session) ProgressBox(text string, height, width int, write func(io.Writer) error) (ExitCode, error) {
	return s.stream("progressbox", captioned(text, height, width), write)
}

// ProgramBox is ProgressBox with an OK button at the end. write must not
// run widgets on s.
func (s *Session) ProgramBox(text string, height, width int, write func(io.Writer) error) (ExitCode, error) {
	return s.stream("programbox", captioned(text, height, width), write)
}

// MixedGauge shows an overall meter and a status per item.
func (s *Session) MixedGauge(text string, height, width, percent int, items []GaugeItem) (ExitCode, error) {
	args := append([]string{text}, dims(height, width, percent)...)
	return s.display("mixedgauge", append(args, gaugeArgs(items)...))
}

func captioned(text string, height, width int) []string {
	var args []string
	if text != "" {
		args = append(args, text)
	}
	return append(args, dims(height, width)...)
}

func (s *Session) stream(widget string, args []string, feed func(io.Writer) error) (ExitCode, error) {
	res, err := s.invoke(request{widget: widget, args: positional(args...), feed: feed})
	if err != nil {
		return s.ExitCode(), err
	}
	return res.code, nil
}

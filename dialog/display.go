// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "strconv"

// MsgBox shows text with a single OK button.
func (s *Session) MsgBox(text string, height, width int) (ExitCode, error) {
	return s.display("msgbox", append([]string{text}, dims(height, width)...))
}

// InfoBox shows text and returns at once, leaving it on screen.
func (s *Session) InfoBox(text string, height, width int) (ExitCode, error) {
	return s.display("infobox", append([]string{text}, dims(height, width)...))
}

// YesNo reports whether the user chose Yes. No and Esc both give false;
// ExitCode tells them apart.
func (s *Session) YesNo(text string, height, width int) (bool, error) {
	code, err := s.display("yesno", append([]string{text}, dims(height, width)...))
	if err != nil {
		return false, err
	}
	return code == ExitOK, nil
}

// TextBox shows the file at path in a scrollable viewer.
func (s *Session) TextBox(path string, height, width int) (ExitCode, error) {
	return s.display("textbox", append([]string{path}, dims(height, width)...))
}

// TailBox follows the file at path like tail -f.
func (s *Session) TailBox(path string, height, width int) (ExitCode, error) {
	return s.display("tailbox", append([]string{path}, dims(height, width)...))
}

// TailBoxBG is TailBox run as a background widget.
func (s *Session) TailBoxBG(path string, height, width int) (ExitCode, error) {
	return s.display("tailboxbg", append([]string{path}, dims(height, width)...))
}

// Pause counts down seconds with a meter.
func (s *Session) Pause(text string, seconds, height, width int) (ExitCode, error) {
	return s.display("pause", append([]string{text}, dims(height, width, seconds)...))
}

// PrgBox runs command through the shell and shows its output. text is shown
// above the output when not empty.
func (s *Session) PrgBox(command string, height, width int, text string) (ExitCode, error) {
	var args []string
	if text != "" {
		args = append(args, text)
	}
	args = append(args, command, strconv.Itoa(height), strconv.Itoa(width))
	return s.display("prgbox", args)
}

func (s *Session) display(widget string, args []string) (ExitCode, error) {
	res, err := s.invoke(request{widget: widget, args: positional(args...)})
	if err != nil {
		return s.ExitCode(), err
	}
	return res.code, nil
}

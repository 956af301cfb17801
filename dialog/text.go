// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// InputBox asks for one line of text, starting from init.
func (s *Session) InputBox(text, init string, height, width int) (string, error) {
	args := append([]string{text}, dims(height, width)...)
	if init != "" {
		args = append(args, init)
	}
	return s.singleLine("inputbox", args)
}

// PasswordBox is an InputBox that does not echo. Set Insecure to show
// asterisks.
func (s *Session) PasswordBox(text, init string, height, width int) (string, error) {
	args := append([]string{text}, dims(height, width)...)
	if init != "" {
		args = append(args, init)
	}
	return s.singleLine("passwordbox", args)
}

// FSelect lets the user pick a file starting at path.
func (s *Session) FSelect(path string, height, width int) (string, error) {
	return s.singleLine("fselect", append([]string{path}, dims(height, width)...))
}

// DSelect lets the user pick a directory starting at path.
func (s *Session) DSelect(path string, height, width int) (string, error) {
	return s.singleLine("dselect", append([]string{path}, dims(height, width)...))
}

// EditBox opens the file at path for editing and returns the edited text.
// The file itself is not modified.
func (s *Session) EditBox(path string, height, width int) (string, error) {
	res, err := s.invoke(request{
		widget: "editbox",
		args:   positional(append([]string{path}, dims(height, width)...)...),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return "", err
	}
	return string(res.data), nil
}

func (s *Session) singleLine(widget string, args []string) (string, error) {
	res, err := s.invoke(request{
		widget: widget,
		args:   positional(args...),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return "", err
	}
	return firstLine(res.data), nil
}

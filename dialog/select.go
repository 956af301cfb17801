// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "strconv"

// dims renders box dimensions. Zero lets dialog size the box itself.
func dims(values ...int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func withItems(head []string, items func(Options) ([]string, error)) func(Options) ([]string, error) {
	return func(opts Options) ([]string, error) {
		rows, err := items(opts)
		if err != nil {
			return nil, err
		}
		return append(append([]string(nil), head...), rows...), nil
	}
}

// Menu shows items and returns the tag of the chosen one.
func (s *Session) Menu(text string, items []MenuItem, height, width, menuHeight int) (string, error) {
	res, err := s.invoke(request{
		widget: "menu",
		args: withItems(append([]string{text}, dims(height, width, menuHeight)...), func(opts Options) ([]string, error) {
			return menuArgs(items, opts)
		}),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return "", err
	}
	return firstLine(res.data), nil
}

// RadioList is a menu with one preselected entry.
func (s *Session) RadioList(text string, items []ListItem, height, width, listHeight int) (string, error) {
	res, err := s.invoke(request{
		widget: "radiolist",
		args: withItems(append([]string{text}, dims(height, width, listHeight)...), func(opts Options) ([]string, error) {
			return listArgs(items, opts)
		}),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return "", err
	}
	return firstLine(res.data), nil
}

// TreeView shows items as a tree and returns the selected tag.
func (s *Session) TreeView(text string, items []TreeItem, height, width, listHeight int) (string, error) {
	res, err := s.invoke(request{
		widget: "treeview",
		args: withItems(append([]string{text}, dims(height, width, listHeight)...), func(opts Options) ([]string, error) {
			return treeArgs(items, opts)
		}),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return "", err
	}
	return firstLine(res.data), nil
}

// Checklist returns the tags the user left switched on, in output order.
func (s *Session) Checklist(text string, items []ListItem, height, width, listHeight int) ([]string, error) {
	return s.multiSelect("checklist", text, items, height, width, listHeight)
}

// Buildlist lets the user move items into a selected list and returns
// their tags in the order chosen.
func (s *Session) Buildlist(text string, items []ListItem, height, width, listHeight int) ([]string, error) {
	return s.multiSelect("buildlist", text, items, height, width, listHeight)
}

func (s *Session) multiSelect(widget, text string, items []ListItem, height, width, listHeight int) ([]string, error) {
	res, err := s.invoke(request{
		widget: widget,
		args: withItems(append([]string{text}, dims(height, width, listHeight)...), func(opts Options) ([]string, error) {
			return listArgs(items, opts)
		}),
		output: outputOnExtra,
	})
	if err != nil {
		return nil, err
	}
	if !res.decode {
		return []string{}, nil
	}
	return splitList(res.data, res.opts), nil
}

// InputMenu is a menu whose entries can be renamed. A rename ends the
// widget with ExitExtra and sets Renamed in the result.
func (s *Session) InputMenu(text string, items []MenuItem, height, width, menuHeight int) (InputMenuResult, error) {
	res, err := s.invoke(request{
		widget: "inputmenu",
		args: withItems(append([]string{text}, dims(height, width, menuHeight)...), func(opts Options) ([]string, error) {
			return menuArgs(items, opts)
		}),
		output: outputOnButtons,
	})
	if err != nil || !res.decode {
		return InputMenuResult{}, err
	}
	return decodeInputMenu(firstLine(res.data), items), nil
}

// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialog drives the dialog(1) program: it turns a typed set of
// options and widget items into an argv, runs the program against the
// caller's terminal, and decodes what the program writes on its result
// stream into Go values.
//
// A Session owns the options. Each widget method takes a snapshot of them,
// so changing fields between calls is safe; changing them from another
// goroutine while a call is in flight is not. Calls on one Session run one
// at a time. The callbacks of Gauge, ProgressBox and ProgramBox run inside
// a call, so they must not start another widget on the same Session.
//
//	d := dialog.New()
//	d.Title = "Pick one"
//	tag, err := d.Menu("Menu Test", []dialog.MenuItem{
//		{Tag: "1", Item: "Item #1"},
//		{Tag: "2", Item: "Item #2"},
//	}, 0, 0, 0)
//
// Setting DryRun builds the command without running it; LastCommand then
// returns what would have been executed.
package dialog

//go:generate go tool addlicense -c AUTHORS -l bsd -check .

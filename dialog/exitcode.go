// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import "strconv"

// ExitCode is the status dialog exits with. It is the only signal for how a
// widget was closed.
type ExitCode int

const (
	ExitOK       ExitCode = 0
	ExitCancel   ExitCode = 1
	ExitHelp     ExitCode = 2
	ExitExtra    ExitCode = 3
	ExitItemHelp ExitCode = 4
	ExitESC      ExitCode = 255
)

func (c ExitCode) String() string {
	switch c {
	case ExitOK:
		return "ok"
	case ExitCancel:
		return "cancel"
	case ExitHelp:
		return "help"
	case ExitExtra:
		return "extra"
	case ExitItemHelp:
		return "item-help"
	case ExitESC:
		return "esc"
	default:
		return "exit " + strconv.Itoa(int(c))
	}
}

// IsCancel reports whether the user dismissed the widget with Cancel or Esc.
func (c ExitCode) IsCancel() bool {
	return c == ExitCancel || c == ExitESC
}

// outputKind says which buttons leave data in a widget's result stream.
type outputKind int

const (
	// outputOnOK widgets write only when the user accepts.
	outputOnOK outputKind = iota
	// outputOnButtons widgets echo a tag or text with every button that
	// is not Cancel or Esc.
	outputOnButtons
	// outputOnExtra widgets write their values on OK and Extra. On Help
	// dialog writes "HELP <tag>" instead, which is not a value.
	outputOnExtra
)

// carriesOutput reports whether the result stream holds data for this code.
func (c ExitCode) carriesOutput(kind outputKind) bool {
	switch c {
	case ExitOK:
		return true
	case ExitExtra:
		return kind != outputOnOK
	case ExitHelp, ExitItemHelp:
		return kind == outputOnButtons
	default:
		return false
	}
}

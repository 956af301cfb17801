// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"strconv"
	"time"
)

// Calendar asks for a date, starting at initial. A zero initial starts at
// today. The result is midnight local time unless DateFormat says more.
func (s *Session) Calendar(text string, height, width int, initial time.Time) (time.Time, error) {
	day, month, year := -1, -1, -1
	if !initial.IsZero() {
		day, month, year = initial.Day(), int(initial.Month()), initial.Year()
	}
	res, err := s.invoke(request{
		widget: "calendar",
		args:   positional(append([]string{text}, dims(height, width, day, month, year)...)...),
	})
	if err != nil || !res.decode {
		return time.Time{}, err
	}
	date, err := parseDate(firstLine(res.data), res.opts)
	return date, s.logDecode(err)
}

// TimeBox asks for a time of day, starting at initial. A zero initial
// starts at the current time.
func (s *Session) TimeBox(text string, height, width int, initial time.Time) (TimeOfDay, error) {
	hour, minute, second := -1, -1, -1
	if !initial.IsZero() {
		hour, minute, second = initial.Clock()
	}
	res, err := s.invoke(request{
		widget: "timebox",
		args:   positional(append([]string{text}, dims(height, width, hour, minute, second)...)...),
	})
	if err != nil || !res.decode {
		return TimeOfDay{}, err
	}
	tod, err := parseTime(firstLine(res.data), res.opts)
	return tod, s.logDecode(err)
}

// RangeBox asks for a number between lo and hi, starting at def.
func (s *Session) RangeBox(text string, height, width, lo, hi, def int) (int, error) {
	res, err := s.invoke(request{
		widget: "rangebox",
		args: positional(text, strconv.Itoa(height), strconv.Itoa(width),
			strconv.Itoa(lo), strconv.Itoa(hi), strconv.Itoa(def)),
	})
	if err != nil || !res.decode {
		return 0, err
	}
	n, err := parseRange(firstLine(res.data))
	return n, s.logDecode(err)
}

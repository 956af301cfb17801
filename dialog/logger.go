// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

// Logger receives debug output from a Session. *log.Logger does not satisfy
// it directly; wrap it with a Debug method that calls Printf.
type Logger interface {
	Debug(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}

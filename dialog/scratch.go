// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"errors"
	"fmt"
	"os"
)

// scratchFile is the side channel dialog writes its result to. It lives for
// exactly one call and is removed by Close.
type scratchFile struct {
	file *os.File
}

func newScratch() (*scratchFile, error) {
	f, err := os.CreateTemp("", "dialog-*")
	if err != nil {
		return nil, fmt.Errorf("create result file: %w", err)
	}
	return &scratchFile{file: f}, nil
}

func (s *scratchFile) Name() string {
	return s.file.Name()
}

// ReadAll returns everything the child wrote. The child shares the file
// description, so the file is read by name from the start.
func (s *scratchFile) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(s.file.Name())
	if err != nil {
		return nil, fmt.Errorf("read result file: %w", err)
	}
	return data, nil
}

func (s *scratchFile) Close() error {
	closeErr := s.file.Close()
	removeErr := os.Remove(s.file.Name())
	if errors.Is(removeErr, os.ErrNotExist) {
		removeErr = nil
	}
	return errors.Join(closeErr, removeErr)
}

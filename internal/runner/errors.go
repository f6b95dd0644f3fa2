// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
)

const maxBufferSize = 8 * 1024 * 1024 // 8MB per stream

var (
	// ErrStart is returned when the child process could not be started.
	ErrStart = errors.New("could not start process")
	// ErrEmptyInvocation is returned for an invocation with no command in it.
	ErrEmptyInvocation = errors.New("invocation is empty")
	// ErrCommandNotFound is returned when the executable is not on PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrShellSyntax is returned when an invocation needs a shell but the mode does not use one.
	ErrShellSyntax = errors.New("invocation uses shell operators")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when the buffer from the operating system pipe could not be read.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrBufferOverflow is returned when a stream exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", maxBufferSize)
	// ErrProcess is matched by every *ProcessError.
	ErrProcess = errors.New("process failed")
)

// ProcessError reports a child process that did not exit successfully.
type ProcessError struct {
	Invocation string
	ExitCode   int  // -1 when the process was terminated by a signal
	Killed     bool // killed after a repeated terminal signal
}

func (e *ProcessError) Error() string {
	if e.Killed {
		return fmt.Sprintf("%q was killed after a repeated signal", e.Invocation)
	}

	if e.ExitCode < 0 {
		return fmt.Sprintf("%q was terminated", e.Invocation)
	}

	return fmt.Sprintf("%q exited with status %d", e.Invocation, e.ExitCode)
}

// Is makes errors.Is(err, ErrProcess) true for any *ProcessError.
func (e *ProcessError) Is(target error) bool {
	return target == ErrProcess
}

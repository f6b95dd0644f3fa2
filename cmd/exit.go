// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"strings"

	"github.com/matt-FFFFFF/clipin/internal/runner"
)

// ExitCode returns the process exit status for the error returned by the root command.
// A failed child process passes its own status through when it has one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var pe *runner.ProcessError
	if errors.As(err, &pe) && pe.ExitCode > 0 {
		return pe.ExitCode
	}

	return 1
}

// ErrorLine formats err as a single line for the terminal.
func ErrorLine(err error) string {
	return "error: " + strings.ReplaceAll(strings.TrimSpace(err.Error()), "\n", "; ")
}

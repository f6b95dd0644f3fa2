// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"io"
	"strings"
)

// Result is the outcome of running an invocation.
type Result struct {
	Invocation string
	ExitCode   int
	StdOut     []byte
	StdErr     []byte
}

// Print prints the captured stderr lines followed by the captured stdout lines,
// one per output line. An empty stream prints nothing.
func (r *Result) Print(w io.Writer) error {
	for _, stream := range [][]byte{r.StdErr, r.StdOut} {
		for _, line := range Lines(stream) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}

	return nil
}

// Lines splits captured output into lines. Both "\n" and "\r\n" end a line and a
// missing final terminator is allowed.
func Lines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}

	s := strings.ReplaceAll(string(b), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}

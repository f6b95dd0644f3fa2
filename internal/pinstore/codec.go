// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decode reads a pins file from r.
//
// Lines are consumed in pairs starting at the first line: the tag, then the invocation.
// A pair whose tag line is empty is skipped as a whole. A trailing tag line with no
// invocation after it is an ErrFormat, unless that tag line is empty.
func Decode(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	lines := splitLines(string(data))
	s := New()

	for i := 0; i < len(lines); i += 2 {
		tag := lines[i]
		if tag == "" {
			continue
		}

		if i+1 >= len(lines) {
			return nil, fmt.Errorf("%w: tag %q on line %d has no invocation", ErrFormat, tag, i+1)
		}

		s.Add(tag, lines[i+1])
	}

	return s, nil
}

// Encode writes s to w, two lines per pin.
func Encode(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)

	for tag, invocation := range s.List() {
		if _, err := fmt.Fprintf(bw, "%s\n%s\n", tag, invocation); err != nil {
			return errors.Join(ErrWrite, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

// splitLines splits text into lines with their terminator removed.
// The terminator is "\n", optionally preceded by "\r". A final line without a
// terminator is still a line; an empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

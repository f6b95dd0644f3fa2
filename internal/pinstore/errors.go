// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import "errors"

var (
	// ErrRead is returned when the pins file does not exist or cannot be read.
	ErrRead = errors.New("failed to read pins file")
	// ErrFormat is returned when the pins file is not a sequence of tag/invocation line pairs.
	ErrFormat = errors.New("malformed pins file")
	// ErrWrite is returned when the pins file cannot be written.
	ErrWrite = errors.New("failed to write pins file")
	// ErrTagNotFound is returned when a tag is not present in the store.
	ErrTagNotFound = errors.New("tag not found")
)

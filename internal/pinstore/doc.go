// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pinstore holds the pin store: an ordered mapping of tag to invocation,
// the codec for the two-line-per-record pins file, and the file binding that
// loads and saves it.
//
// The file format is plain text. Each record is two lines, the tag followed by
// the invocation. A record whose tag line is empty is skipped. Newlines inside a
// tag or invocation cannot be represented.
package pinstore

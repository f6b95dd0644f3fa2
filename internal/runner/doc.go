// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner executes a pinned invocation as a child process.
//
// How the invocation string becomes a process depends on the Mode, which is
// decided once from the host platform (see DefaultMode). On Windows the string
// is handed to cmd.exe. Everywhere else it is split into words and the first
// word is looked up on PATH, with no shell in between.
//
// The child's stdout and stderr are captured in full and printed only after it
// exits: stderr lines first, then stdout lines.
package runner

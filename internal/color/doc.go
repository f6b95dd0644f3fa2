// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI colour codes for terminal output.
//
// Colour is off when NO_COLOR is set, forced on when FORCE_COLOR is set, and
// otherwise on only when the destination is a terminal (golang.org/x/term).
package color

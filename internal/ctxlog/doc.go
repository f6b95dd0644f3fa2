// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context.
//
// The default logger writes to stderr through PrettyHandler, so log lines never
// mix with command output on stdout. The level comes from the environment
// variable <EXECUTABLE>_LOG_LEVEL (for example CLIPIN_LOG_LEVEL) and can be
// changed at runtime with SetLevel. The default level is WARN.
package ctxlog

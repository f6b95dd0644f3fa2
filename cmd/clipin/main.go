// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the clipin command-line application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/clipin/cmd"
	"github.com/matt-FFFFFF/clipin/internal/color"
	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stderr))
}

// run executes the root command with args and returns the process exit status.
// Errors are written to stderr as a single line.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	if err := cmd.NewRootCmd().Run(ctx, args); err != nil {
		ctxlog.Logger(ctx).Debug("command failed", "error", err)
		fmt.Fprintln(stderr, color.Colorize(cmd.ErrorLine(err), color.FgRed)) //nolint:errcheck

		return cmd.ExitCode(err)
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")

	return 0
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
)

func (d *dispatcher) run(ctx context.Context, tag string) error {
	s, err := d.file.Load(ctx)
	if err != nil {
		return err
	}

	invocation, err := s.Get(tag)
	if err != nil {
		return err
	}

	ctxlog.Debug(ctx, "running pin", "tag", tag, "invocation", invocation)

	res, err := d.runner.Run(ctx, invocation)
	if res != nil {
		ctxlog.Debug(ctx, "pin finished", "tag", tag, "exitCode", res.ExitCode)
	}

	return err
}

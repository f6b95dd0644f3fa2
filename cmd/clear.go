// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
)

func (d *dispatcher) clear(ctx context.Context) error {
	if err := d.file.Clear(ctx); err != nil {
		return err
	}

	ctxlog.Info(ctx, "pins cleared")

	return nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/matt-FFFFFF/clipin/internal/pinstore"
)

func (d *dispatcher) add(ctx context.Context, tag, invocation string) error {
	err := d.file.Update(ctx, func(s *pinstore.Store) error {
		s.Add(tag, invocation)
		return nil
	})
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "pin added", "tag", tag, "invocation", invocation)

	return nil
}

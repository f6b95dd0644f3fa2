// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/matt-FFFFFF/clipin/internal/pinstore"
)

// delete removes tag. A missing tag is an error and the file is left as it was.
func (d *dispatcher) delete(ctx context.Context, tag string) error {
	err := d.file.Update(ctx, func(s *pinstore.Store) error {
		return s.Delete(tag)
	})
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "pin deleted", "tag", tag)

	return nil
}

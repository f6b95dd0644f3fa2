// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"

	"github.com/matt-FFFFFF/clipin/internal/render"
)

func (d *dispatcher) list(ctx context.Context) error {
	s, err := d.file.Load(ctx)
	if err != nil {
		return err
	}

	return render.Write(d.out, d.format, s, render.Options{Colour: colourOutput(d.out)})
}

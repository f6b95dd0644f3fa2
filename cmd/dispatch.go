// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/clipin/internal/color"
	"github.com/matt-FFFFFF/clipin/internal/command"
	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/matt-FFFFFF/clipin/internal/pinstore"
	"github.com/matt-FFFFFF/clipin/internal/render"
	"github.com/matt-FFFFFF/clipin/internal/runner"
	"github.com/urfave/cli/v3"
)

// request is one parsed invocation of the program.
type request struct {
	command command.Command
	tag     string
	invoke  string
}

// dispatcher routes a request to the store and the runner.
type dispatcher struct {
	out    io.Writer
	file   *pinstore.File
	runner *runner.Runner
	format render.Format
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if lvl := cmd.String(logLevelFlag); lvl != "" {
		if err := ctxlog.SetLevel(lvl); err != nil {
			return err
		}
	}

	name := cmd.StringArg(commandArg)
	if name == "" {
		return &command.MissingArgumentError{Flag: commandArg}
	}

	c, err := command.Parse(name)
	if err != nil {
		return err
	}

	req := request{
		command: c,
		tag:     cmd.String(tagFlag),
		invoke:  cmd.String(invokeFlag),
	}

	if err := c.Validate(req.tag, req.invoke); err != nil {
		return err
	}

	format := render.Text
	if c == command.List {
		if format, err = render.ParseFormat(cmd.String(formatFlag)); err != nil {
			return err
		}
	}

	path := cmd.String(pinsFileFlag)
	if path == "" {
		if path, err = pinstore.DefaultPath(); err != nil {
			return err
		}
	}

	d := &dispatcher{
		out:    cmd.Root().Writer,
		file:   pinstore.NewFile(path),
		runner: runner.New(cmd.Root().Writer),
		format: format,
	}

	return d.dispatch(ctx, req)
}

func (d *dispatcher) dispatch(ctx context.Context, req request) error {
	ctx = ctxlog.New(ctx, ctxlog.Logger(ctx).With("command", req.command.String()))
	ctxlog.Debug(ctx, "dispatching", "tag", req.tag, "pinsFile", d.file.Path)

	var err error

	switch req.command {
	case command.Add:
		err = d.add(ctx, req.tag, req.invoke)
	case command.Delete:
		err = d.delete(ctx, req.tag)
	case command.List:
		err = d.list(ctx)
	case command.Run:
		err = d.run(ctx, req.tag)
	case command.Clear:
		err = d.clear(ctx)
	default:
		err = fmt.Errorf("%w %q", command.ErrUnknownCommand, req.command.String())
	}

	if pinstore.IsNotExist(err) {
		ctxlog.Warn(ctx, "pins file does not exist, run clear to create an empty one", "path", d.file.Path)
	}

	return err
}

// colourOutput reports whether output to w should be coloured.
func colourOutput(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return color.EnabledFor(f)
	}

	return false
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/clipin"
	"github.com/matt-FFFFFF/clipin/internal/render"
	"github.com/urfave/cli/v3"
)

const (
	commandArg   = "command"
	tagFlag      = "tag"
	invokeFlag   = "invoke"
	pinsFileFlag = "pins-file"
	formatFlag   = "format"
	logLevelFlag = "log-level"
)

// NewRootCmd returns the root command for the CLI.
// A fresh command is needed for every Run as it holds the parsed flags.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Name:      "clipin",
		Usage:     "Application to tag CLI commands for easy recall",
		UsageText: "clipin <command> [-t|--tag TAG] [-i|--invoke INVOCATION]",
		Description: `Pin a command line under a short tag and run it again later by that tag.

Commands:
  add     save INVOCATION under TAG, replacing any previous pin with that tag (needs --tag and --invoke)
  run     run the invocation pinned under TAG (needs --tag)
  delete  remove the pin TAG (needs --tag)
  list    show every pin
  clear   remove every pin

Command names are case-insensitive. Pins are kept in a file named "pins" next to
the clipin executable unless --pins-file is given.`,
		Version:   clipin.VersionString(),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      commandArg,
				UsageText: "COMMAND",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    tagFlag,
				Aliases: []string{"t"},
				Usage:   "The tag of the pin to interact with",
			},
			&cli.StringFlag{
				Name:    invokeFlag,
				Aliases: []string{"i"},
				Usage:   "The CLI command to invoke",
			},
			&cli.StringFlag{
				Name:      pinsFileFlag,
				Usage:     "Path of the pins file, defaults to a file named pins next to the executable",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:        formatFlag,
				Usage:       "Output format for list: text, table, yaml or json",
				Value:       string(render.Text),
				DefaultText: string(render.Text),
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Log level: debug, info, warn or error",
			},
		},
		Action: actionFunc,
	}
}

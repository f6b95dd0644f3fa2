// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the closed set of clipin commands and the options
// each one requires.
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand is returned for a command name outside the known set.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is matched by every *MissingArgumentError.
	ErrMissingArgument = errors.New("missing required argument")
)

// Command is one of the clipin commands.
type Command int

// The known commands. The zero value is not a valid command.
const (
	Run Command = iota + 1
	Add
	List
	Clear
	Delete
)

// All lists the commands in the order they are documented.
var All = []Command{Run, Add, List, Clear, Delete}

// Requirement describes the options a command needs.
type Requirement struct {
	Tag    bool
	Invoke bool
}

// Parse returns the command named s, ignoring case.
func Parse(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range All {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w %q, expected one of %s", ErrUnknownCommand, s, Names())
}

// Names returns the command names joined for display.
func Names() string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = c.String()
	}

	return strings.Join(names, ", ")
}

func (c Command) String() string {
	switch c {
	case Run:
		return "run"
	case Add:
		return "add"
	case List:
		return "list"
	case Clear:
		return "clear"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Requires returns the options c needs.
func (c Command) Requires() Requirement {
	switch c {
	case Add:
		return Requirement{Tag: true, Invoke: true}
	case Delete, Run:
		return Requirement{Tag: true}
	default:
		return Requirement{}
	}
}

// MissingArgumentError reports a required option that was not given.
type MissingArgumentError struct {
	Command string
	Flag    string
}

func (e *MissingArgumentError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s is required", e.Flag)
	}

	return fmt.Sprintf("%s required for %s command", e.Flag, e.Command)
}

// Is makes errors.Is(err, ErrMissingArgument) true for any *MissingArgumentError.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// Validate checks that the options c requires are present. An empty value counts as absent.
func (c Command) Validate(tag, invoke string) error {
	req := c.Requires()

	if req.Tag && tag == "" {
		return &MissingArgumentError{Command: c.String(), Flag: "--tag"}
	}

	if req.Invoke && invoke == "" {
		return &MissingArgumentError{Command: c.String(), Flag: "--invoke"}
	}

	return nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render writes the pins of a store for display.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/matt-FFFFFF/clipin/internal/pinstore"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format for a list of pins.
type Format string

// Supported formats.
const (
	Text  Format = "text"
	Table Format = "table"
	YAML  Format = "yaml"
	JSON  Format = "json"
)

// Formats lists the supported formats, default first.
var Formats = []Format{Text, Table, YAML, JSON}

const (
	textHeader    = "[tag] => [invocation]"
	separatorSize = 40
)

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options controls rendering.
type Options struct {
	Colour bool // colourise JSON output
}

// Write renders the pins of s to w in format f.
func Write(w io.Writer, f Format, s *pinstore.Store, opts Options) error {
	var err error

	switch f {
	case Text:
		err = writeText(w, s)
	case Table:
		err = writeTable(w, s)
	case YAML:
		err = writeYAML(w, s)
	case JSON:
		err = writeJSON(w, s, opts.Colour)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if err != nil {
		return fmt.Errorf("failed to render %s: %w", f, err)
	}

	return nil
}

func writeText(w io.Writer, s *pinstore.Store) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", textHeader, strings.Repeat("=", separatorSize)); err != nil {
		return err
	}

	for tag, invocation := range s.List() {
		if _, err := fmt.Fprintf(w, "%s => %s\n", tag, invocation); err != nil {
			return err
		}
	}

	return nil
}

func writeTable(w io.Writer, s *pinstore.Store) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tag", "Invocation"})

	for tag, invocation := range s.List() {
		tw.AppendRow(table.Row{tag, invocation})
	}

	_, err := fmt.Fprintln(w, tw.Render())

	return err
}

func writeYAML(w io.Writer, s *pinstore.Store) error {
	m := make(yaml.MapSlice, 0, s.Len())
	for tag, invocation := range s.List() {
		m = append(m, yaml.MapItem{Key: tag, Value: invocation})
	}

	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

func writeJSON(w io.Writer, s *pinstore.Store, colour bool) error {
	pins := make([]interface{}, 0, s.Len())
	for tag, invocation := range s.List() {
		pins = append(pins, map[string]interface{}{
			"tag":        tag,
			"invocation": invocation,
		})
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !colour

	b, err := f.Marshal(pins)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", b)

	return err
}

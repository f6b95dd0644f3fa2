// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	// FileName is the name of the pins file, kept next to the executable.
	FileName = "pins"
	fileMode = 0o644
)

// File binds the pins codec to a path on a filesystem.
type File struct {
	Path string
	fs   afero.Fs
}

// NewFile returns a File for path on the filesystem returned by FsFactory.
func NewFile(path string) *File {
	return &File{
		Path: path,
		fs:   FsFactory(),
	}
}

// DefaultPath returns the path of the pins file next to the running executable.
// Symlinks to the executable are resolved first.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads and decodes the pins file.
func (f *File) Load(ctx context.Context) (*Store, error) {
	logger := ctxlog.Logger(ctx).With("path", f.Path)
	logger.Debug("loading pins file")

	fh, err := f.fs.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, f.Path, err)
	}
	defer fh.Close() //nolint:errcheck

	s, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	logger.Debug("pins file loaded", "pins", s.Len())

	return s, nil
}

// Save truncates the pins file and writes s to it.
// The content is encoded before the file is opened.
func (f *File) Save(ctx context.Context, s *Store) (err error) {
	logger := ctxlog.Logger(ctx).With("path", f.Path)

	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}

	fh, err := f.fs.OpenFile(f.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, f.Path, err)
	}

	defer func() {
		if cerr := fh.Close(); cerr != nil {
			merr := multierror.Append(err, fmt.Errorf("%w %s: %w", ErrWrite, f.Path, cerr))
			merr.ErrorFormat = oneLineFormat
			err = merr.ErrorOrNil()
		}
	}()

	if _, err := fh.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, f.Path, err)
	}

	logger.Debug("pins file saved", "pins", s.Len(), "bytes", buf.Len())

	return nil
}

// Clear replaces the pins file with an empty one. The existing file is not read.
func (f *File) Clear(ctx context.Context) error {
	return f.Save(ctx, New())
}

// Update loads the store, applies fn and saves the result.
// Nothing is written if loading or fn fails.
func (f *File) Update(ctx context.Context, fn func(*Store) error) error {
	s, err := f.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(s); err != nil {
		return err
	}

	return f.Save(ctx, s)
}

func oneLineFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// IsNotExist reports whether err was caused by a missing pins file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

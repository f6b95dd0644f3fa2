// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/opt/clipin/pins"

func memFs(t *testing.T, content map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, data := range content {
		require.NoError(t, afero.WriteFile(fs, name, []byte(data), fileMode))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)

	return fs
}

func TestFile_Load(t *testing.T) {
	memFs(t, map[string]string{testPath: "build\nmake -j4\n"})

	s, err := NewFile(testPath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Pin{{Tag: "build", Invocation: "make -j4"}}, s.Pins())
}

func TestFile_LoadMissing(t *testing.T) {
	memFs(t, nil)

	_, err := NewFile(testPath).Load(context.Background())
	require.ErrorIs(t, err, ErrRead)
	assert.True(t, IsNotExist(err))
	assert.Contains(t, err.Error(), testPath)
}

func TestFile_LoadMalformed(t *testing.T) {
	memFs(t, map[string]string{testPath: "orphan\n"})

	_, err := NewFile(testPath).Load(context.Background())
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), testPath)
}

func TestFile_SaveTruncates(t *testing.T) {
	fs := memFs(t, map[string]string{testPath: "old\nold command that is long\nother\nx\n"})

	s := New()
	s.Add("new", "ls")

	require.NoError(t, NewFile(testPath).Save(context.Background(), s))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Equal(t, "new\nls\n", string(data))
}

func TestFile_SaveCreates(t *testing.T) {
	fs := memFs(t, nil)

	s := New()
	s.Add("echo", "echo hello")

	require.NoError(t, NewFile(testPath).Save(context.Background(), s))

	exists, err := afero.Exists(fs, testPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFile_SaveReadOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("a\n1\n"), fileMode))

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return afero.NewReadOnlyFs(fs)
	})
	defer stubs.Reset()

	err := NewFile(testPath).Save(context.Background(), New())
	require.ErrorIs(t, err, ErrWrite)

	data, rerr := afero.ReadFile(fs, testPath)
	require.NoError(t, rerr)
	assert.Equal(t, "a\n1\n", string(data))
}

func TestFile_Clear(t *testing.T) {
	fs := memFs(t, map[string]string{testPath: "a\n1\nb\n2\n"})
	f := NewFile(testPath)

	require.NoError(t, f.Clear(context.Background()))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Empty(t, data)

	s, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestFile_ClearDoesNotRead(t *testing.T) {
	// a malformed file would fail to load, clear must still succeed
	memFs(t, map[string]string{testPath: "orphan\n"})

	require.NoError(t, NewFile(testPath).Clear(context.Background()))
}

func TestFile_UpdateDeleteMissingLeavesFile(t *testing.T) {
	fs := memFs(t, map[string]string{testPath: "a\n1\n"})

	err := NewFile(testPath).Update(context.Background(), func(s *Store) error {
		return s.Delete("nope")
	})
	require.ErrorIs(t, err, ErrTagNotFound)

	data, rerr := afero.ReadFile(fs, testPath)
	require.NoError(t, rerr)
	assert.Equal(t, "a\n1\n", string(data))
}

func TestFile_UpdateLoadFailureDoesNotWrite(t *testing.T) {
	fs := memFs(t, nil)

	called := false
	err := NewFile(testPath).Update(context.Background(), func(*Store) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrRead)
	assert.False(t, called)

	exists, _ := afero.Exists(fs, testPath)
	assert.False(t, exists)
}

func TestFile_UpdateAdd(t *testing.T) {
	fs := memFs(t, map[string]string{testPath: "a\n1\n"})

	err := NewFile(testPath).Update(context.Background(), func(s *Store) error {
		s.Add("b", "2")
		return nil
	})
	require.NoError(t, err)

	data, rerr := afero.ReadFile(fs, testPath)
	require.NoError(t, rerr)
	assert.Equal(t, "a\n1\nb\n2\n", string(data))
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, FileName, filepath.Base(p))
	assert.True(t, filepath.IsAbs(p))
}

func TestOneLineFormat(t *testing.T) {
	assert.Equal(t, "a; b", oneLineFormat([]error{errors.New("a"), errors.New("b")}))
}

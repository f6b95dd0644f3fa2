// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Pin
		wantErr error
	}{
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "single pin",
			content: "build\nmake -j4\n",
			want:    []Pin{{Tag: "build", Invocation: "make -j4"}},
		},
		{
			name:    "order is preserved",
			content: "zeta\nz\nalpha\na\nmid\nm\n",
			want: []Pin{
				{Tag: "zeta", Invocation: "z"},
				{Tag: "alpha", Invocation: "a"},
				{Tag: "mid", Invocation: "m"},
			},
		},
		{
			name:    "missing final newline",
			content: "build\nmake",
			want:    []Pin{{Tag: "build", Invocation: "make"}},
		},
		{
			name:    "crlf line endings",
			content: "build\r\nmake -j4\r\n",
			want:    []Pin{{Tag: "build", Invocation: "make -j4"}},
		},
		{
			name:    "surrounding whitespace is kept",
			content: " build \n make \n",
			want:    []Pin{{Tag: " build ", Invocation: " make "}},
		},
		{
			name:    "blank tag skips its pair",
			content: "\nignored\nbuild\nmake\n",
			want:    []Pin{{Tag: "build", Invocation: "make"}},
		},
		{
			name:    "blank tag skip is positional",
			content: "\nbuild\nmake\nls\n",
			want:    []Pin{{Tag: "make", Invocation: "ls"}},
		},
		{
			name:    "duplicate tag keeps first position and last invocation",
			content: "a\n1\nb\n2\na\n3\n",
			want: []Pin{
				{Tag: "a", Invocation: "3"},
				{Tag: "b", Invocation: "2"},
			},
		},
		{
			name:    "empty invocation is allowed",
			content: "noop\n\n",
			want:    []Pin{{Tag: "noop", Invocation: ""}},
		},
		{
			name:    "trailing blank tag line is tolerated",
			content: "build\nmake\n\n",
			want:    []Pin{{Tag: "build", Invocation: "make"}},
		},
		{
			name:    "trailing tag without invocation",
			content: "build\nmake\norphan\n",
			wantErr: ErrFormat,
		},
		{
			name:    "single line",
			content: "orphan",
			wantErr: ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.content))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Pins())
		})
	}
}

func TestDecode_FormatErrorNamesLine(t *testing.T) {
	_, err := Decode(strings.NewReader("a\n1\nb\n"))
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"b"`)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecode_ReadFailure(t *testing.T) {
	_, err := Decode(failingReader{})
	require.ErrorIs(t, err, ErrRead)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestEncode(t *testing.T) {
	s := New()
	s.Add("build", "make -j4")
	s.Add("list", "ls -la")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	assert.Equal(t, "build\nmake -j4\nlist\nls -la\n", buf.String())
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New()))
	assert.Empty(t, buf.String())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	stores := map[string][]Pin{
		"empty":  nil,
		"one":    {{Tag: "echo", Invocation: "echo hello"}},
		"spaces": {{Tag: " padded ", Invocation: "  indented command  "}},
		"many": {
			{Tag: "b", Invocation: "second"},
			{Tag: "a", Invocation: "first"},
			{Tag: "quoted", Invocation: `sh -c "echo 'hi there'"`},
			{Tag: "unicode", Invocation: "echo héllo wörld"},
			{Tag: "blank", Invocation: ""},
		},
	}

	for name, pins := range stores {
		t.Run(name, func(t *testing.T) {
			s := New()
			for _, p := range pins {
				s.Add(p.Tag, p.Invocation)
			}

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, s))

			got, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, s.Pins(), got.Pins())
		})
	}
}

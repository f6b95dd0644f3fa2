// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/mattn/go-shellwords"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // System32 is the directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // cmdExe is the name of the command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Default shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
)

// Mode decides how an invocation string becomes a process.
type Mode int

const (
	// ModeExec splits the invocation into words and runs the first word directly.
	ModeExec Mode = iota
	// ModeShell passes the invocation unchanged to the system shell.
	ModeShell
)

// DefaultMode is the mode for the host platform.
var DefaultMode = ModeFor(runtime.GOOS)

// ModeFor returns the mode used on the given GOOS.
func ModeFor(goos string) Mode {
	if goos == GOOSWindows {
		return ModeShell
	}

	return ModeExec
}

func (m Mode) String() string {
	switch m {
	case ModeExec:
		return "exec"
	case ModeShell:
		return "shell"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Command returns the executable path and its arguments for invocation.
// The arguments do not include the executable name itself.
func (m Mode) Command(ctx context.Context, invocation string) (string, []string, error) {
	if strings.TrimSpace(invocation) == "" {
		return "", nil, ErrEmptyInvocation
	}

	switch m {
	case ModeShell:
		if runtime.GOOS == GOOSWindows {
			return defaultShell(ctx), []string{commandSwitchWindows, invocation}, nil
		}

		return defaultShell(ctx), []string{commandSwitchUnix, invocation}, nil

	case ModeExec:
		words, err := splitWords(invocation)
		if err != nil {
			return "", nil, err
		}

		path, err := lookPath(words[0])
		if err != nil {
			return "", nil, err
		}

		return path, words[1:], nil

	default:
		return "", nil, fmt.Errorf("%w: unsupported mode %s", ErrStart, m)
	}
}

// splitWords splits invocation with POSIX shell quoting rules.
// Variables and backticks are not expanded.
func splitWords(invocation string) ([]string, error) {
	p := shellwords.NewParser()

	words, err := p.Parse(keepDoubleQuotedBackslashes(invocation))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrStart, invocation, err)
	}

	if p.Position >= 0 {
		return nil, fmt.Errorf("%w in %q", ErrShellSyntax, invocation)
	}

	if len(words) == 0 {
		return nil, ErrEmptyInvocation
	}

	return words, nil
}

// doubleQuoteEscapes are the characters a backslash escapes inside double quotes.
const doubleQuoteEscapes = "$`\"\\\n"

// keepDoubleQuotedBackslashes doubles every backslash inside double quotes that does
// not precede one of doubleQuoteEscapes. shellwords drops any backslash outside single
// quotes, whereas a POSIX shell keeps these ones, so "a\n" stays a, backslash, n.
func keepDoubleQuotedBackslashes(s string) string {
	var (
		b              strings.Builder
		single, double bool
	)

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]

		switch {
		case r == '\\' && !single:
			b.WriteRune(r)

			if i+1 == len(rs) {
				continue
			}

			i++
			if double && !strings.ContainsRune(doubleQuoteEscapes, rs[i]) {
				b.WriteRune('\\')
			}

			b.WriteRune(rs[i])
		case r == '\'' && !double:
			single = !single
			b.WriteRune(r)
		case r == '"' && !single:
			double = !double
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lookPath resolves name to an executable. A name containing a path separator
// is used as given; anything else is searched for in PATH.
func lookPath(name string) (string, error) {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name, nil
		}

		return "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}

		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}

		if runtime.GOOS == GOOSWindows && filepath.Ext(name) == "" && isExecutable(candidate+".exe") {
			return candidate + ".exe", nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCommandNotFound, name)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	// check if the file is executable if not Windows
	if runtime.GOOS != GOOSWindows && info.Mode()&0o111 == 0 {
		return false
	}

	return true
}

func defaultShell(ctx context.Context) string {
	if runtime.GOOS == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}

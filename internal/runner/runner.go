// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
	"github.com/matt-FFFFFF/clipin/internal/signalbroker"
)

// Runner executes invocations and prints their captured output to Out.
type Runner struct {
	Mode  Mode
	Out   io.Writer      // receives captured stderr then stdout lines, defaults to os.Stdout
	Dir   string         // working directory of the child, empty for the current one
	sigCh chan os.Signal // signals to relay to the child, allows mocking in test
}

// New returns a Runner using DefaultMode and writing to out.
func New(out io.Writer) *Runner {
	return &Runner{
		Mode: DefaultMode,
		Out:  out,
	}
}

// Run starts invocation, waits for it to exit and prints what it wrote.
// The output is printed whether or not the process succeeded.
// A non-zero exit status is returned as a *ProcessError alongside the result.
func (r *Runner) Run(ctx context.Context, invocation string) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("mode", r.Mode.String())

	path, args, err := r.Mode.Command(ctx, invocation)
	if err != nil {
		return nil, err
	}

	logger.Debug("command info", "path", path, "args", args, "cwd", r.Dir)

	res, err := r.exec(ctx, invocation, path, args)
	if res == nil {
		return nil, err
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	if werr := res.Print(out); werr != nil {
		err = errors.Join(err, werr)
	}

	return res, err
}

func (r *Runner) exec(ctx context.Context, invocation, path string, args []string) (*Result, error) {
	logger := ctxlog.Logger(ctx)

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}
	defer rOut.Close() //nolint:errcheck

	rErr, wErr, err := os.Pipe()
	if err != nil {
		_ = wOut.Close()
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}
	defer rErr.Close() //nolint:errcheck

	argv := slices.Concat([]string{filepath.Base(path)}, args)

	logger.Debug("starting process")

	ps, err := os.StartProcess(path, argv, &os.ProcAttr{
		Dir:   r.Dir,
		Env:   os.Environ(),
		Files: []*os.File{os.Stdin, wOut, wErr},
	})

	// the child holds its own copies of the write ends
	_ = wOut.Close()
	_ = wErr.Close()

	if err != nil {
		return nil, errors.Join(ErrStart, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	res := &Result{Invocation: invocation}

	var (
		wg                   sync.WaitGroup
		stdoutErr, stderrErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		res.StdOut, stdoutErr = readAllUpToMax(ctx, rOut, maxBufferSize)
	}()

	go func() {
		defer wg.Done()
		res.StdErr, stderrErr = readAllUpToMax(ctx, rErr, maxBufferSize)
	}()

	sigCh := r.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	done := make(chan struct{})
	killed := make(chan bool, 1)

	go func() {
		killed <- signalbroker.Relay(ctx, sigCh, ps, done)
	}()

	logger.Debug("waiting for process to finish")

	state, waitErr := ps.Wait()

	close(done)
	wasKilled := <-killed

	wg.Wait()

	if waitErr != nil {
		return nil, errors.Join(ErrStart, waitErr)
	}

	res.ExitCode = state.ExitCode()

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"stdoutBytes", len(res.StdOut),
		"stderrBytes", len(res.StdErr),
	)

	var procErr error
	if !state.Success() {
		procErr = &ProcessError{Invocation: invocation, ExitCode: res.ExitCode, Killed: wasKilled}
	}

	return res, errors.Join(procErr, stdoutErr, stderrErr)
}

// readAllUpToMax reads r until EOF, keeping at most maxBufferSize bytes.
// Anything past the limit is drained and discarded so the writer never blocks.
func readAllUpToMax(ctx context.Context, r io.Reader, maxBufferSize int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, maxBufferSize+1)
	if err != nil && err != io.EOF {
		return buf.Bytes(), errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > maxBufferSize {
		discarded, _ := io.Copy(io.Discard, r)

		ctxlog.Logger(ctx).Debug(
			"buffer overflow in readAllUpToMax",
			"bytesRead", n+discarded,
			"maxBytes", maxBufferSize,
		)

		return buf.Bytes()[:maxBufferSize], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

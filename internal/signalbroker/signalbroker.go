// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker listens for the OS signals that would terminate the
// process and relays them to a child process instead.
//
// By default it listens for os.Interrupt, syscall.SIGINT, syscall.SIGTERM and
// syscall.SIGQUIT. The first signal of a kind is passed on to the child; a second
// signal of the same kind kills it.
package signalbroker

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/clipin/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// Target is a process that signals can be relayed to. *os.Process implements it.
type Target interface {
	Signal(sig os.Signal) error
	Kill() error
}

// New creates a new signal broker that listens for OS signals that should terminate the process.
// Call Stop when the channel is no longer needed.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops delivery of signals to ch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}

// Relay passes signals from sigCh to target until done is closed or sigCh is closed.
// It returns true if target was killed because the same signal arrived twice.
func Relay(ctx context.Context, sigCh <-chan os.Signal, target Target, done <-chan struct{}) bool {
	logger := ctxlog.Logger(ctx)
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-done:
			return false

		case s, ok := <-sigCh:
			if !ok {
				return false
			}

			if _, dup := seen[s]; dup {
				logger.Info("received duplicate signal, killing child process", "signal", s.String())

				if err := target.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
					logger.Error("failed to kill child process", "error", err)
				}

				return true
			}

			seen[s] = struct{}{}

			logger.Info("relaying signal to child process", "signal", s.String())

			if err := target.Signal(s); err != nil {
				logger.Info("failed to relay signal", "signal", s.String(), "error", err)
			}
		}
	}
}

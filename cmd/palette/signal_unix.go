// Unix/Darwin signal handling for stopping file --watch.
//
// This file is compiled on all non-Windows platforms (Linux, macOS, *BSD).
// It listens for both SIGINT (Ctrl+C) and SIGTERM, the conventional signal
// sent by process managers and container runtimes to request a graceful stop.

//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ///////////////////////////////////////////////
// Signal Handling
// ///////////////////////////////////////////////

// signalContext returns a context cancelled on SIGINT or SIGTERM. The stop
// function restores default signal behavior.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

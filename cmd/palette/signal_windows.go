// Windows signal handling for stopping file --watch.
//
// This file is compiled only on Windows. Windows does not support POSIX
// signals like SIGTERM, so only [os.Interrupt] (Ctrl+C / CTRL_C_EVENT) is
// registered. The Go runtime maps CTRL_BREAK_EVENT and console-close events
// to os.Interrupt as well.

//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// ///////////////////////////////////////////////
// Signal Handling
// ///////////////////////////////////////////////

// signalContext returns a context cancelled on os.Interrupt. The stop
// function restores default signal behavior.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

// Package logger provides verbose-gated logging for the CLI layer.
package logger

import (
	"log"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool

	std = log.New(os.Stderr, "", log.LstdFlags)
)

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return verbose.Load()
}

// Debugf logs a debug message when verbose mode is enabled.
func Debugf(format string, args ...any) {
	if verbose.Load() {
		std.Printf("DEBUG "+format, args...)
	}
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	std.Printf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	std.Printf("ERROR "+format, args...)
}

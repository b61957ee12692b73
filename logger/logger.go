// Package logger provides a configurable zerolog logger shared by the
// command line tools built on this module. The core coding package never
// logs.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput changes the writer behind the package logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the package logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}

// Package logging wires the process-wide zerolog logger. Diagnostics go to
// stderr so tables and JSON on stdout stay machine-readable.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Init configures the logger. Without verbose only warnings and errors
// surface; with verbose the scan steps are traced at debug level.
func Init(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// L returns the process logger
func L() *zerolog.Logger {
	return &logger
}

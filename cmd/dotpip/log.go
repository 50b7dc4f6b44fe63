package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the logger handed to plugins. Debug runs add timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "dotpip",
	})
}

// logLevel maps the verbosity flags to a log level.
func logLevel(verbose bool, quiet bool) log.Level {
	switch {
	case verbose:
		return log.DebugLevel
	case quiet:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

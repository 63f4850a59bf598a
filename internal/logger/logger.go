// Package logger wraps the standard logger with the file/stdout sinks
// and the verbose toggle the CLI exposes.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger wraps log.Logger with an optional debug level.
type Logger struct {
	*log.Logger
	verbose bool
}

// New creates a logger writing to stdout.
func New() *Logger {
	return &Logger{Logger: log.New(os.Stdout, "", log.LstdFlags)}
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{Logger: log.New(w, "", log.LstdFlags)}
}

// SetVerbose enables Debugf output.
func (l *Logger) SetVerbose(v bool) { l.verbose = v }

// Debugf logs only when verbose is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.verbose {
		l.Printf(format, args...)
	}
}

package logging

import (
	"io"
	"log"
)

// Classification is the category of a log entry.
type Classification string

const (
	Debug Classification = "DEBUG"
	Info  Classification = "INFO"
	Warn  Classification = "WARN"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(classification Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
type Noop struct{}

func (Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library
// logger, and delegates logging to its Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}
	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a new StandardLogger writing to writer.
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "xmpgen ", log.LstdFlags),
	}
}

// Leveled filters Debug entries unless Verbose is set. All other entries are
// passed through to the wrapped logger.
type Leveled struct {
	Logger  Logger
	Verbose bool
}

// Logf forwards the entry to the wrapped logger if its classification passes
// the filter.
func (l Leveled) Logf(classification Classification, format string, v ...interface{}) {
	if classification == Debug && !l.Verbose {
		return
	}
	l.Logger.Logf(classification, format, v...)
}

// ABOUTME: Standard logger implementation backed by logrus
// ABOUTME: Provides structured logging with level and format support

package standard

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	entry *logrus.Logger
}

// Options configures a StandardLogger
type Options struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string

	// Format is json or text. Defaults to json.
	Format string

	// Output defaults to stdout
	Output io.Writer
}

// NewStandardLogger creates a new standard logger with default options
func NewStandardLogger() *StandardLogger {
	return NewLogger(Options{})
}

// NewLogger creates a logger from options. Unknown levels fall back to info.
func NewLogger(opts Options) *StandardLogger {
	logger := logrus.New()

	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	} else {
		logger.SetOutput(os.Stdout)
	}

	if opts.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return &StandardLogger{entry: logger}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

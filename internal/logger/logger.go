package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger provides structured logging scoped by component
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a level name to a LogLevel, defaulting to InfoLevel.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the application logger. JSON output goes to writer as-is,
// otherwise writer is wrapped in a zerolog console writer.
func New(level LogLevel, useJSON bool, writer io.Writer) Logger {
	if writer == nil {
		writer = os.Stderr
	}
	if !useJSON {
		writer = zerolog.ConsoleWriter{Out: writer}
	}
	return NewZerolog(writer, level.zerolog())
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Info(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{}) {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Debug(string, string, map[string]interface{}) {}

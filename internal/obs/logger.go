package obs

import (
	"log"
	"os"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging hook exposed by the server. Implementations
// decide formatting and destination.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// StdLogger adapts the standard library logger, dropping lines below
// Min and prepending the level (and an optional prefix) to each line.
type StdLogger struct {
	L      *log.Logger
	Min    Level
	Prefix string
}

func (s StdLogger) Logf(level Level, format string, args ...interface{}) {
	if s.L == nil || level < s.Min {
		return
	}
	if s.Prefix != "" {
		s.L.Printf("%s[%s] "+format, append([]interface{}{s.Prefix, level.String()}, args...)...)
	} else {
		s.L.Printf("[%s] "+format, append([]interface{}{level.String()}, args...)...)
	}
}

// Stderr returns a StdLogger writing to standard error at min level.
func Stderr(min Level) StdLogger {
	return StdLogger{L: log.New(os.Stderr, "", log.LstdFlags), Min: min}
}

// Package logging provides the small leveled logger used by the conversion
// layer and the CLI, with zap and logrus adapters.
//
// Core packages (coder, section, stream) never log; errors are returned to
// the caller instead.
package logging

import (
	"fmt"
	"strings"
)

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Provide an adapter around a logging stack.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Backend names accepted by New.
const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendNop    = "nop"
)

// Level names accepted by New.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ValidLevel reports whether level is a known level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// New creates a Logger writing to stderr with the named backend and minimum level.
// The returned sync function flushes buffered entries and must be called before exit.
func New(backend, level string) (Logger, func() error, error) {
	if !ValidLevel(level) {
		return nil, nil, fmt.Errorf("unknown log level %q", level)
	}

	switch strings.ToLower(backend) {
	case "", BackendZap:
		l, err := newZap(level)
		if err != nil {
			return nil, nil, err
		}

		return ZapLogger{L: l}, l.Sync, nil
	case BackendLogrus:
		return LogrusLogger{L: newLogrus(level)}, func() error { return nil }, nil
	case BackendNop:
		return NopLogger{}, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

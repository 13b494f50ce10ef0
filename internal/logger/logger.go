// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the deploy-config tool.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Logs go to stderr: stdout is reserved for the rendered configuration.
package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label that writes JSON
// to os.Stderr at the given level.
func NewLogger(role string, level zerolog.Level) *Logger {
	return New(os.Stderr, role, level)
}

// New constructs a *Logger writing JSON to w.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp field;
//   - a "func" caller field with the fully-qualified function name instead of
//     the default file:line format.
func New(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and adds a "component" field.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

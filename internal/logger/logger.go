// SPDX-License-Identifier: Apache-2.0

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the externalconfig tool.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Code should pass *Logger by pointer and obtain operation-scoped loggers via
// FromContext.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "cli") at the
// given level. Output is written to os.Stderr so that command output on
// os.Stdout stays machine-readable.
func NewLogger(role string, level zerolog.Level) *Logger {
	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext returns ctx with the receiver attached so that FromContext can
// recover it further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// LevelForVerbosity maps a repeated -v count onto a zerolog level. The
// default is warn; one -v enables info, two enable debug, three or more
// enable trace.
func LevelForVerbosity(verbose int) zerolog.Level {
	switch {
	case verbose <= 0:
		return zerolog.WarnLevel
	case verbose == 1:
		return zerolog.InfoLevel
	case verbose == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

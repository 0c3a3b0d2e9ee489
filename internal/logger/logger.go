// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes-keeper binaries.
//
// Every entry is JSON and carries the binary's role, a timestamp and the
// calling function under "func". Request handlers get their logger from the
// context with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField    = "role"
	traceIDField = "trace_id"
	callerField  = "func"

	defaultClientLogFile = "logs"
)

type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

// New builds a *Logger writing to out. The zerolog globals (level and caller
// format) are set on the first call.
func New(out io.Writer, role string) *Logger {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = callerField
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	return &Logger{
		zerolog.New(out).With().
			Str(roleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger logs to stdout. Used by the server.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger appends to logPath, since the terminal belongs to the UI.
// An empty logPath means a "logs" file next to the executable. If the file
// cannot be opened the logger falls back to stdout.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), defaultClientLogFile)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l := NewLogger(role)
		l.Warn().Err(err).Str("path", logPath).Msg("cannot open log file, logging to stdout")
		return l
	}

	return New(file, role)
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ForTrace returns a child logger that tags entries with traceID.
func (l *Logger) ForTrace(traceID string) *Logger {
	return &Logger{l.With().Str(traceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with WithContext. Without
// one it returns zerolog's default context logger, which may be disabled,
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

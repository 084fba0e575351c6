// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx builds the progress loggers of the ttff commands.
package logx

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a level name ("debug", "info", "warn", "error").
// Unknown names yield info.
func ParseLevel(name string) zapcore.Level {
	var l zapcore.Level
	if err := l.Set(name); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// New returns a console logger writing to w at the given level.
// Timestamps are omitted so that runs over the same data log the same
// text.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// OrNop returns l, or a no-op logger if l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

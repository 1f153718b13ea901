// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*log)(nil)

type log struct {
	internalLogger *zap.Logger
}

// NewLogger returns a logger that writes human readable output at [level] and
// above to [w], prefixed with [prefix].
func NewLogger(prefix string, level zapcore.Level, w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	internalLogger := zap.New(core)
	if prefix != "" {
		internalLogger = internalLogger.Named(prefix)
	}
	return &log{
		internalLogger: internalLogger,
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.internalLogger.Fatal(msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.internalLogger.Error(msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.internalLogger.Warn(msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.internalLogger.Info(msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.internalLogger.Debug(msg, fields...)
}

func (l *log) Verbo(msg string, fields ...zap.Field) {
	// Verbo maps below zap's debug level; emit it as debug on the internal
	// logger so it is never silently dropped when enabled.
	l.internalLogger.Debug(msg, fields...)
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
}

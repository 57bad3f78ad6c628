// Package logging provides a small zap wrapper for the engine and async
// pool to log through, trimmed from the teacher's logging package: that
// package builds a full profile/policy/middleware pipeline (redaction,
// throttling, correlation IDs) for a compliance-governed CLI tool with
// multiple deployment profiles. This module has exactly one deployment
// shape — an embedded library — so it keeps only the encoder config,
// optional rotating file sink, and level control the teacher's New()
// assembles before handing off to middleware.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger = zap.New(defaultCore(level), zap.AddCaller())
)

// encoderConfig matches the teacher's RFC3339Nano/short-caller encoder
// shape so a host application sees the same log line format regardless of
// which layer emitted it.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func defaultCore(lvl zap.AtomicLevel) zapcore.Core {
	encoder := zapcore.NewJSONEncoder(encoderConfig())
	return zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), lvl)
}

// L returns the package-level logger, already configured with
// AddCaller so call sites show up correctly in structured output.
func L() *zap.Logger {
	return logger
}

// SetLevel adjusts the minimum log level at runtime without rebuilding the
// logger, mirroring the teacher's zap.AtomicLevel usage.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

// UseRotatingFile redirects output to a size/age-rotated file sink via
// lumberjack, exactly as the teacher wires lumberjack into its own sink
// config, for host applications that want file-based logs instead of
// stdout.
func UseRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), level)
	logger = zap.New(core, zap.AddCaller())
}

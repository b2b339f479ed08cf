// Package logging builds the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// console receives the human-facing log stream. It is stderr so that command
// output on stdout stays clean.
var console zapcore.WriteSyncer = os.Stderr

// New builds a logger for mode ("production" or anything else for development).
// When file is set, JSON records are also written to a rotated file.
func New(mode, file string) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if mode == "production" {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(console), level)
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core = zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotated),
				level,
			),
			core,
		)
	}
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}

// Setup builds the logger and installs it as the zap global.
// The returned func flushes buffered entries.
func Setup(mode, file string) func() {
	logger, err := New(mode, file)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return func() { _ = logger.Sync() }
}

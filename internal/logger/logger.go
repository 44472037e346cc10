package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init configures the global logger. Production builds emit JSON, everything
// else uses the human-readable development encoder.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = l
}

// Sync flushes any buffered log entries. Call before the process exits.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// L returns the underlying zap logger, initializing a development logger if
// Init was never called (keeps tests from having to bootstrap logging).
func L() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Debug(msg string, fields ...zapcore.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	L().Fatal(msg, fields...)
}

// Package logging sets up the process-wide zap logger. Because the
// interactive picker owns the terminal (alternate screen, raw mode),
// diagnostics can never go to stdout/stderr while it runs; everything is
// written to a rotating file instead.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const dirPerms = 0o750

var logger = zap.NewNop()

// Init configures the global file logger. An empty path resolves to the
// default state location. The returned function flushes buffered entries
// and should be deferred by main.
func Init(level, path string) (func(), error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve home directory")
		}
		path = filepath.Join(home, ".local", "state", "snag", "snag.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     14, // days
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, lvl)
	logger = zap.New(core)

	return func() { _ = logger.Sync() }, nil
}

// L returns the global logger. Before Init it is a nop logger, so early
// construction paths can log unconditionally.
func L() *zap.Logger {
	return logger
}

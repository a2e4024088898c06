// Package logging provides the process-wide zap logger.
//
// The terminal belongs to the UI, so until Init is given an output path
// every record is discarded.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.RWMutex
	globalLogger = zap.NewNop()
	globalLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	OutputPath string // file path; empty discards
}

// Init replaces the global logger. An unknown level falls back to info.
func Init(cfg Config) error {
	level := ParseLevel(cfg.Level)
	if cfg.OutputPath == "" {
		mu.Lock()
		globalLevel.SetLevel(level)
		globalLogger = zap.NewNop()
		mu.Unlock()
		return nil
	}

	var config zap.Config
	if cfg.Format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = globalLevel
	config.OutputPaths = []string{cfg.OutputPath}
	config.ErrorOutputPaths = []string{cfg.OutputPath}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}

	mu.Lock()
	globalLevel.SetLevel(level)
	globalLogger = logger
	mu.Unlock()
	return nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// SetLevel changes the global log level at runtime. Unknown names are ignored.
func SetLevel(name string) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return
	}
	globalLevel.SetLevel(level)
}

// Set installs logger as the global logger; tests use it with zaptest/observer.
func Set(logger *zap.Logger) {
	mu.Lock()
	globalLogger = logger
	mu.Unlock()
}

// L returns the global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	return L().Sync()
}

// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	level = zap.NewAtomicLevel()
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" uses a JSON encoder at info level, "test" discards everything,
// and any other value uses a human-readable console encoder at debug level.
func Init(env string) {
	once.Do(func() {
		var cfg zap.Config

		switch env {
		case "test":
			sugar = zap.NewNop().Sugar()
			return
		case "production":
			cfg = zap.NewProductionConfig()
		default:
			cfg = zap.NewDevelopmentConfig()
		}

		level.SetLevel(cfg.Level.Level())
		cfg.Level = level

		base, err := cfg.Build()
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// SetLevel changes the minimum level of the global logger at runtime.
// An empty string leaves the environment default in place.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Level reports the current minimum level of the global logger.
func Level() zapcore.Level {
	return level.Level()
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Named returns a child of the global logger scoped to a component.
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

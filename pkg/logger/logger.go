// Package logger builds the zap logger used for diagnostics. Diagnostics go
// to stderr so they never interleave with the console dialogue on stdout.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Config controls the logger construction.
type Config struct {
	Level             string
	Encoding          string
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
}

// DefaultConfig keeps the console quiet: only warnings and errors.
func DefaultConfig() Config {
	return Config{
		Level:             "warn",
		Encoding:          "console",
		DisableCaller:     true,
		DisableStacktrace: true,
	}
}

// VerboseConfig logs every statement at debug level.
func VerboseConfig() Config {
	return Config{
		Level:       "debug",
		Encoding:    "console",
		Development: true,
	}
}

// New builds a zap logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = level

	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	zc.DisableCaller = cfg.DisableCaller
	zc.DisableStacktrace = cfg.DisableStacktrace
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

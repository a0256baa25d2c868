package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger so commands can hand one value around and still
// pass the embedded *zap.Logger to components.
type Logger struct {
	*zap.Logger
}

// Config selects level, encoding and sinks.
type Config struct {
	Level string // debug, info, warn, error
	// Development switches to colored console output with stack traces on
	// warnings; otherwise JSON.
	Development bool
	// OutputPaths are zap sink URLs or file paths. Empty means stderr.
	OutputPaths []string
}

// New builds a logger from cfg. An unknown level is an error.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          "json",
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Development {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{Logger: logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// FromLevel builds a stderr logger for level. An empty level means debug in
// development and info otherwise; an unknown one falls back to info.
func FromLevel(level string, development bool) *Logger {
	if level == "" {
		level = "info"
		if development {
			level = "debug"
		}
	}

	cfg := Config{Level: level, Development: development}
	if logger, err := New(cfg); err == nil {
		return logger
	}
	cfg.Level = "info"
	if logger, err := New(cfg); err == nil {
		return logger
	}
	return NewNop()
}

package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
func NewApplicationLogger() (*zap.Logger, error) {
	return NewLeveledLogger(zap.NewAtomicLevelAt(zapcore.InfoLevel))
}

// NewLeveledLogger builds the same console logger around a level that can be
// changed after construction, e.g. once --verbose has been parsed.
func NewLeveledLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	return newConsoleConfig(level).Build()
}

func newConsoleConfig(level zap.AtomicLevel) zap.Config {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config
}

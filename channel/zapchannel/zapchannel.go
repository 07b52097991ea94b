// Package zapchannel directs zap output into a diagnostic channel.
//
// Each zap entry becomes one channel message, so entries from concurrent
// loggers never interleave inside a line.
package zapchannel

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/diagkit/channel"
)

// Config holds configuration for a channel-backed zap core
type Config struct {
	// Encoder formats entries (default: console encoder without timestamps)
	Encoder zapcore.Encoder
	// Level is the minimum enabled level (default: DebugLevel)
	Level zapcore.LevelEnabler
}

// EncoderConfig returns the default encoder configuration: level, logger
// name, message and fields, without a timestamp so that channel content is
// reproducible across runs.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = zapcore.OmitKey
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	return cfg
}

// NewCore returns a zapcore.Core writing to the named channel of reg.
func NewCore(reg *channel.Registry, name string, cfg Config) zapcore.Core {
	if cfg.Encoder == nil {
		cfg.Encoder = zapcore.NewConsoleEncoder(EncoderConfig())
	}
	if cfg.Level == nil {
		cfg.Level = zapcore.DebugLevel
	}
	return zapcore.NewCore(cfg.Encoder, reg.Writer(name), cfg.Level)
}

// New returns a logger writing to the named channel of reg. The logger is
// named after the channel.
func New(reg *channel.Registry, name string, cfg Config, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(reg, name, cfg), opts...).Named(name)
}

// Package config reads diagkit settings from flags and DIAGKIT_* environment
// variables and turns them into registry options and the ambient logger.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/diagkit/channel"
)

// EnvPrefix is the prefix of environment variables mirroring the flags,
// e.g. DIAGKIT_DIR for --dir.
const EnvPrefix = "DIAGKIT"

// Config holds the settings shared by programs using diagkit
type Config struct {
	// Dir is the directory channel files are written to
	Dir string
	// LogLevel is the minimum level of diagkit's own log output: debug,
	// info, warn, error or none
	LogLevel string
	// Sync commits every channel message to stable storage
	Sync bool
}

// Register adds the config flags to fs.
func (cfg *Config) Register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{
		LongName:    "dir",
		Value:       ffval.NewValueDefault(&cfg.Dir, "."),
		Usage:       "directory for channel files",
		Placeholder: "DIR",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "log-level",
		Value:       ffval.NewEnum(&cfg.LogLevel, "warn", "debug", "info", "error", "none"),
		Usage:       "diagkit log level: debug, info, warn, error, none",
		Placeholder: "LEVEL",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:  "sync",
		Value:     ffval.NewValue(&cfg.Sync),
		Usage:     "fsync channel files after every message",
		NoDefault: true,
	})
}

// Parse parses args and the environment into a Config.
func Parse(name string, args []string) (Config, error) {
	var cfg Config
	fs := ff.NewFlagSet(name)
	cfg.Register(fs)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for consistency.
func (cfg Config) Validate() error {
	if cfg.Dir == "" {
		return errors.New("channel directory must not be empty")
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	return nil
}

// Logger returns a console logger on stderr at the configured level, or a
// no-op logger for "none".
func (cfg Config) Logger() (*zap.Logger, error) {
	if cfg.LogLevel == "none" {
		return zap.NewNop(), nil
	}
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)).Named("diagkit"), nil
}

// ChannelOptions returns registry options reporting through logger.
func (cfg Config) ChannelOptions(logger *zap.Logger) channel.Options {
	return channel.Options{
		Dir:    cfg.Dir,
		Logger: logger,
		Sync:   cfg.Sync,
	}
}

func (cfg Config) level() (zapcore.Level, error) {
	switch cfg.LogLevel {
	case "", "none":
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return level, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	return level, nil
}

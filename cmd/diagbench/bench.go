package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/oklog/run"
	"github.com/oklog/ulid/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/diagkit/channel"
	"github.com/philipp01105/diagkit/channel/zapchannel"
	"github.com/philipp01105/diagkit/config"
	"github.com/philipp01105/diagkit/core"
	"github.com/philipp01105/diagkit/formatter"
	"github.com/philipp01105/diagkit/instrument"
	"github.com/philipp01105/diagkit/timer"
)

// summaryChannel receives the structured run summary.
const summaryChannel = "diagbench"

type benchConfig struct {
	config.Config

	channels     int
	messages     int
	size         int
	requireModes string

	stdout io.Writer
	log    *zap.Logger
	clock  core.TickSource
}

func (cfg *benchConfig) validate() error {
	if err := cfg.Config.Validate(); err != nil {
		return err
	}
	switch {
	case cfg.channels <= 0:
		return errors.Newf("--channels must be positive, got %d", cfg.channels)
	case cfg.messages < 0:
		return errors.Newf("--messages must not be negative, got %d", cfg.messages)
	case cfg.size <= 0:
		return errors.Newf("--size must be positive, got %d", cfg.size)
	}
	return checkModes(instrument.Modes(), cfg.requireModes)
}

// checkModes returns an error unless compiled has every mode named in
// required, including the modes those imply.
func checkModes(compiled core.Mode, required string) error {
	want, err := core.ParseMode(required)
	if err != nil {
		return errors.Wrap(err, "--require-modes")
	}
	want = want.Implied()
	if !compiled.Has(want) {
		return errors.Newf("binary built with modes %s, need %s", compiled, want)
	}
	return nil
}

func (cfg *benchConfig) Exec(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.Newf("unexpected arguments %q", args)
	}

	var g run.Group

	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(func() error {
			return cfg.runWorkload(ctx)
		}, func(error) {
			cancel()
		})
	}

	{
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}

	return g.Run()
}

// runWorkload writes the configured messages into a fresh run directory and
// prints one lapse per channel plus the total.
func (cfg *benchConfig) runWorkload(ctx context.Context) (err error) {
	clock := cfg.clock
	if clock == nil {
		clock = core.SystemClock()
	}
	timers := timer.NewRegistry(clock)

	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
	dir := filepath.Join(cfg.Dir, id.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create run directory")
	}
	cfg.log.Info("starting run",
		zap.String("dir", dir),
		zap.Int("channels", cfg.channels),
		zap.Int("messages", cfg.messages),
		zap.Int("size", cfg.size),
		zap.Stringer("modes", instrument.Modes()),
	)

	opts := cfg.ChannelOptions(cfg.log)
	opts.Dir = dir
	reg := channel.NewRegistry(opts)
	defer func() {
		err = multierr.Append(err, reg.Close())
	}()

	payload := message(cfg.size)
	names := make([]string, cfg.channels)
	for i := range names {
		names[i] = fmt.Sprintf("channel-%03d", i)
	}

	timers.Start("total")
	for _, name := range names {
		timers.Start(name)
		for i := 0; i < cfg.messages; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := reg.Log(name, payload); err != nil {
				return err
			}
		}
		if err := cfg.printLapse(timers, name); err != nil {
			return err
		}
	}
	if err := cfg.printLapse(timers, "total"); err != nil {
		return err
	}

	total, err := timers.Elapsed("total")
	if err != nil {
		return err
	}
	stats := reg.Stats()
	fmt.Fprintf(cfg.stdout, "%d messages, %d bytes, %s\n", stats.Messages, stats.Bytes, rate(stats.Messages, total))

	summary := zapchannel.New(reg, summaryChannel, zapchannel.Config{})
	summary.Info("run complete",
		zap.String("run", id.String()),
		zap.Uint64("messages", stats.Messages),
		zap.Uint64("bytes", stats.Bytes),
		zap.Float64("seconds", total),
	)
	return nil
}

func (cfg *benchConfig) printLapse(timers *timer.Registry, name string) error {
	seconds, err := timers.Elapsed(name)
	if err != nil {
		return err
	}
	return formatter.WriteLapse(cfg.stdout, name, seconds)
}

// message returns a payload of size bytes ending in a newline.
func message(size int) string {
	b := bytes.Repeat([]byte{'x'}, size)
	b[size-1] = '\n'
	return string(b)
}

func rate(messages uint64, seconds float64) string {
	if seconds <= 0 || messages == 0 {
		return "n/a"
	}
	return string(formatter.Seconds(nil, seconds/float64(messages))) + "s/message"
}

// diagbench drives the channel and timer registries with a synthetic
// workload and reports how long it took.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/oklog/run"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffval"

	"github.com/philipp01105/diagkit/config"
)

func main() {
	var (
		ctx    = context.Background()
		stdout = os.Stdout
		stderr = os.Stderr
		args   = os.Args[1:]
	)
	err := exec(ctx, stdout, stderr, args)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.As(err, &(run.SignalError{})):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exec(ctx context.Context, stdout, stderr io.Writer, args []string) (err error) {
	cfg := &benchConfig{stdout: stdout}

	flags := ff.NewFlagSet("diagbench")
	cfg.Config.Register(flags)
	flags.AddFlag(ff.FlagConfig{
		LongName:    "channels",
		Value:       ffval.NewValueDefault(&cfg.channels, 4),
		Usage:       "number of channels to write",
		Placeholder: "N",
	})
	flags.AddFlag(ff.FlagConfig{
		LongName:    "messages",
		Value:       ffval.NewValueDefault(&cfg.messages, 10000),
		Usage:       "messages per channel",
		Placeholder: "N",
	})
	flags.AddFlag(ff.FlagConfig{
		LongName:    "size",
		Value:       ffval.NewValueDefault(&cfg.size, 64),
		Usage:       "message size in bytes, including the newline",
		Placeholder: "BYTES",
	})

	flags.AddFlag(ff.FlagConfig{
		LongName:    "require-modes",
		Value:       ffval.NewValue(&cfg.requireModes),
		Usage:       "fail unless these instrumentation modes are compiled in, e.g. debug,stats",
		Placeholder: "MODES",
	})

	command := &ff.Command{
		Name:      "diagbench",
		ShortHelp: "measure the cost of diagnostic channels and timers",
		LongHelp:  "Write messages to N channels in a fresh run directory under --dir and print timer lapses.",
		Flags:     flags,
		Exec:      cfg.Exec,
	}

	// Print help when appropriate.
	showHelp := true
	defer func() {
		errHelp := errors.Is(err, ff.ErrHelp) || errors.Is(err, ff.ErrNoExec)
		if showHelp || errHelp {
			fmt.Fprintf(stderr, "\n%s\n", ffhelp.Command(command))
		}
		if errHelp {
			err = nil
		}
	}()

	if err := command.Parse(args, ff.WithEnvVarPrefix(config.EnvPrefix)); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.log, err = cfg.Config.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = cfg.log.Sync() }()

	// Run errors shouldn't show help by default.
	showHelp = false

	return command.Run(ctx)
}

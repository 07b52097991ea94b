package instrument

import (
	"testing"

	"go.uber.org/zap"

	"github.com/philipp01105/diagkit/channel"
	"github.com/philipp01105/diagkit/core"
	"github.com/philipp01105/diagkit/timer"
)

// isolate installs fresh registries on a manual clock for the duration of
// the test and returns them with the channel directory.
func isolate(t *testing.T) (*channel.Registry, *core.ManualClock, string) {
	t.Helper()
	dir := t.TempDir()
	channels := channel.NewRegistry(channel.Options{Dir: dir, Logger: zap.NewNop()})
	clock := core.NewManualClock(1000)

	prevChannels := SetChannels(channels)
	prevTimers := SetTimers(timer.NewRegistry(clock))
	t.Cleanup(func() {
		channels.Close()
		SetChannels(prevChannels)
		SetTimers(prevTimers)
	})
	return channels, clock, dir
}

// clearDefaults removes the process-wide registries for the duration of
// the test.
func clearDefaults(t *testing.T) {
	t.Helper()
	prevChannels := SetChannels(nil)
	prevTimers := SetTimers(nil)
	t.Cleanup(func() {
		SetChannels(prevChannels)
		SetTimers(prevTimers)
	})
}

func instantiated() (channels, timers bool) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultChannels != nil, defaultTimers != nil
}

package instrument

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/diagkit/channel"
	"github.com/philipp01105/diagkit/core"
	"github.com/philipp01105/diagkit/timer"
)

var (
	defaultMu       sync.RWMutex
	defaultChannels *channel.Registry
	defaultTimers   *timer.Registry
	timerOutput     io.Writer = os.Stdout
)

// Channels returns the process-wide channel registry, creating it in the
// working directory on first use.
func Channels() *channel.Registry {
	defaultMu.RLock()
	r := defaultChannels
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultChannels == nil {
		defaultChannels = channel.NewRegistry(channel.Options{})
	}
	return defaultChannels
}

// SetChannels installs r as the process-wide channel registry and returns
// the previous one, which may be nil. The caller owns the previous registry.
func SetChannels(r *channel.Registry) *channel.Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultChannels
	defaultChannels = r
	return prev
}

// Timers returns the process-wide timer registry, creating it on the system
// clock on first use.
func Timers() *timer.Registry {
	defaultMu.RLock()
	r := defaultTimers
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTimers == nil {
		defaultTimers = timer.NewRegistry(core.SystemClock())
	}
	return defaultTimers
}

// SetTimers installs r as the process-wide timer registry and returns the
// previous one, which may be nil.
func SetTimers(r *timer.Registry) *timer.Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultTimers
	defaultTimers = r
	return prev
}

// SetTimerOutput sets where TimerPrint writes. A nil w restores the
// default, os.Stdout.
func SetTimerOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	timerOutput = w
}

func getTimerOutput() io.Writer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return timerOutput
}

// Shutdown tears down the process-wide registries: every channel is flushed
// and closed and every timer is forgotten. Registries that were never
// created are left alone. The closed channel registry stays installed, so
// later Log calls are rejected instead of truncating files again.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultTimers != nil {
		defaultTimers.Reset()
	}
	if defaultChannels != nil {
		return defaultChannels.Close()
	}
	return nil
}

// Modes returns the instrumentation modes compiled into this binary.
func Modes() core.Mode {
	var m core.Mode
	if DebugEnabled {
		m |= core.DebugMode
	}
	if TimerEnabled {
		m |= core.TimerMode
	}
	if AssertionEnabled {
		m |= core.AssertionMode
	}
	if StatsEnabled {
		m |= core.StatsMode
	}
	return m
}

package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickSource is a monotonic clock used only for measuring intervals.
type TickSource interface {
	// Now returns the current tick count. It never decreases within a
	// process run.
	Now() int64

	// Frequency returns the number of ticks per second. It is constant for
	// the lifetime of the source.
	Frequency() int64
}

// MonotonicClock is a TickSource backed by the runtime's monotonic clock.
// Ticks are nanoseconds since the clock was created.
type MonotonicClock struct {
	epoch time.Time
}

// NewMonotonicClock returns a MonotonicClock whose epoch is now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{epoch: time.Now()}
}

// Now implements TickSource.
func (c *MonotonicClock) Now() int64 {
	return int64(time.Since(c.epoch))
}

// Frequency implements TickSource.
func (c *MonotonicClock) Frequency() int64 {
	return int64(time.Second)
}

var (
	systemClockOnce sync.Once
	systemClock     *MonotonicClock
)

// SystemClock returns the process-wide monotonic clock. It is safe to call
// multiple times; the clock is created exactly once and its epoch is the
// first call.
func SystemClock() TickSource {
	systemClockOnce.Do(func() {
		systemClock = NewMonotonicClock()
	})
	return systemClock
}

// ManualClock is a TickSource that only moves when told to. It is safe for
// concurrent use.
type ManualClock struct {
	ticks     atomic.Int64
	freq      int64
	freqReads atomic.Int64
}

// NewManualClock returns a ManualClock at tick zero with the given
// frequency in ticks per second.
func NewManualClock(freq int64) *ManualClock {
	return &ManualClock{freq: freq}
}

// Now implements TickSource.
func (c *ManualClock) Now() int64 {
	return c.ticks.Load()
}

// Frequency implements TickSource.
func (c *ManualClock) Frequency() int64 {
	c.freqReads.Add(1)
	return c.freq
}

// Tick advances the clock by n ticks.
func (c *ManualClock) Tick(n int64) {
	c.ticks.Add(n)
}

// Advance advances the clock by d, converted to ticks at the clock's
// frequency.
func (c *ManualClock) Advance(d time.Duration) {
	whole := int64(d/time.Second) * c.freq
	frac := int64(d%time.Second) * c.freq / int64(time.Second)
	c.ticks.Add(whole + frac)
}

// FrequencyReads returns how many times Frequency has been called.
func (c *ManualClock) FrequencyReads() int64 {
	return c.freqReads.Load()
}

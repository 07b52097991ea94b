// Package core defines the shared types used across diagkit.
//
// It provides the TickSource interface for monotonic interval measurement,
// the Mode bitmask describing which instrumentation is compiled in, caller
// lookup for assertion messages, and the sentinel errors returned by the
// channel and timer registries.
//
// A TickSource reports raw ticks plus a fixed frequency. Only differences
// between two Now readings on the same process are meaningful; the
// frequency is read once by each consumer and never again. SystemClock
// returns the process-wide monotonic source, started exactly once.
// ManualClock is a deterministic source for tests.
package core

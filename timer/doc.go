// Package timer implements the timer registry: named stopwatches that
// measure the time since their most recent Start.
//
// A timer has no stopped state. Start records the current tick count and
// overwrites any earlier start; Elapsed reads it without changing anything.
// Only differences between readings in the same process mean anything.
//
// The registry reads the tick frequency from its TickSource exactly once,
// in NewRegistry. Asking for the elapsed time of a timer that was never
// started is a programming error: Elapsed returns an assertion failure
// wrapping core.ErrNotStarted and MustElapsed panics with it.
package timer

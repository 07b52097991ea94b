package channel

import "sync/atomic"

// Stats tracks registry statistics
type Stats struct {
	// MessagesTotal counts messages written successfully
	MessagesTotal uint64
	// BytesTotal counts bytes written successfully
	BytesTotal uint64
	// FailuresTotal counts open and write failures
	FailuresTotal uint64
	// RejectedTotal counts calls with an invalid or colliding name
	RejectedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically records one message of n bytes
func (s *Stats) IncrementWritten(n int) {
	atomic.AddUint64(&s.MessagesTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// IncrementFailures atomically increments the failure counter
func (s *Stats) IncrementFailures() {
	atomic.AddUint64(&s.FailuresTotal, 1)
}

// IncrementRejected atomically increments the rejected counter
func (s *Stats) IncrementRejected() {
	atomic.AddUint64(&s.RejectedTotal, 1)
}

// Snapshot is a point-in-time copy of registry statistics.
type Snapshot struct {
	Channels int
	Failed   int
	Messages uint64
	Bytes    uint64
	Failures uint64
	Rejected uint64
}

func (s *Stats) snapshot(channels, failed int) Snapshot {
	return Snapshot{
		Channels: channels,
		Failed:   failed,
		Messages: atomic.LoadUint64(&s.MessagesTotal),
		Bytes:    atomic.LoadUint64(&s.BytesTotal),
		Failures: atomic.LoadUint64(&s.FailuresTotal),
		Rejected: atomic.LoadUint64(&s.RejectedTotal),
	}
}

package core

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidChannel is returned for channel names that cannot be mapped
	// to a file in the output directory.
	ErrInvalidChannel = errors.New("invalid channel name")

	// ErrNameCollision is returned when a channel name differs only in case
	// from a channel that is already open.
	ErrNameCollision = errors.New("channel name collides with an open channel")

	// ErrChannelFailed is returned for every write to a channel whose sink
	// could not be opened or written.
	ErrChannelFailed = errors.New("channel failed")

	// ErrClosed is returned after the registry has been torn down.
	ErrClosed = errors.New("registry closed")

	// ErrNotStarted marks an elapsed-time query for a timer that was never
	// started.
	ErrNotStarted = errors.New("timer not started")
)

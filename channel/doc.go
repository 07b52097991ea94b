// Package channel implements the channel registry: named, append-only
// diagnostic output streams, one file per name.
//
// The first Log call for a name creates <dir>/<name>.log, truncating any
// file left over from a previous run, and writes the message. Every later
// call appends and flushes before returning, so the content survives if the
// host program aborts right after logging. Messages are written verbatim;
// the registry adds no framing, timestamps or delimiters. Channels that are
// never logged to never produce a file.
//
// Channels cannot be closed individually. Every sink lives until
// Registry.Close, which flushes and closes each one exactly once.
//
// Names must be usable as a single file name: non-empty, not "." or "..",
// and free of path separators and control characters. A name that equals
// an open channel's name under case folding but is spelled differently is
// rejected, so two channels never share a file on a case-insensitive
// filesystem.
//
// When a sink cannot be opened or written, the failure is returned,
// reported once through the registry's zap logger, and the channel is
// marked failed. Every later write to it returns an error matching
// core.ErrChannelFailed; it never reports success again.
//
// A Registry is safe for concurrent use. One mutex serializes all
// operations, so each channel's content is the in-order concatenation of
// the messages logged to it.
package channel

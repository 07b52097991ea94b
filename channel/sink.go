package channel

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// Sink is the output behind one channel. *os.File satisfies it.
type Sink interface {
	io.Writer
	// Sync commits written data to stable storage.
	Sync() error
	// Close releases the sink. It is called exactly once.
	Close() error
}

// Flusher is implemented by buffered sinks. The registry calls Flush after
// every message.
type Flusher interface {
	Flush() error
}

// Opener creates the sink for a channel file. The file must be created if
// missing and truncated if present.
type Opener func(path string) (Sink, error)

// OpenFile is the default Opener. It creates missing parent directories and
// opens path for appending after truncating it.
func OpenFile(path string) (Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create channel directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open channel file")
	}
	return f, nil
}

// flushSink pushes buffered data of s to the OS.
func flushSink(s Sink) error {
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// closeSink flushes, syncs and closes s. Close is attempted even when the
// flush or sync fails.
func closeSink(s Sink) error {
	err := flushSink(s)
	if err == nil {
		err = s.Sync()
	}
	return multierr.Append(err, s.Close())
}

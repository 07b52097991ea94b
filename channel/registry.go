package channel

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/cases"

	"github.com/philipp01105/diagkit/core"
)

// Options holds configuration for a Registry
type Options struct {
	// Dir is the directory channel files are created in (default: ".")
	Dir string
	// Open creates channel sinks (default: OpenFile)
	Open Opener
	// Logger receives resource failures and rejected names (default: DefaultLogger)
	Logger *zap.Logger
	// Sync commits every message to stable storage before Log returns
	// (default: false, messages are flushed to the OS only)
	Sync bool
}

// DefaultLogger returns the logger used when Options.Logger is nil: a
// console encoder on stderr at warn level.
func DefaultLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)).Named("diagkit")
}

// Registry maps channel names to open sinks.
type Registry struct {
	dir   string
	open  Opener
	log   *zap.Logger
	sync  bool
	stats *Stats

	mu       sync.Mutex
	fold     cases.Caser
	channels map[string]*entry
	folded   map[string]string // case-folded name -> name
	closed   bool
}

type entry struct {
	name string
	path string
	sink Sink  // nil once failed or closed
	err  error // sticky, marked with core.ErrChannelFailed
}

// NewRegistry creates an empty registry. No file is touched until the first
// Log call.
func NewRegistry(opts Options) *Registry {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Open == nil {
		opts.Open = OpenFile
	}
	if opts.Logger == nil {
		opts.Logger = DefaultLogger()
	}
	return &Registry{
		dir:      opts.Dir,
		open:     opts.Open,
		log:      opts.Logger,
		sync:     opts.Sync,
		stats:    NewStats(),
		fold:     cases.Fold(),
		channels: map[string]*entry{},
		folded:   map[string]string{},
	}
}

// Dir returns the directory channel files are created in.
func (r *Registry) Dir() string {
	r.mustInit()
	return r.dir
}

// Log writes message to channel, opening the channel first if this is the
// first message for it.
func (r *Registry) Log(channel, message string) error {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.acquire(channel)
	if err != nil {
		return err
	}
	return r.write(e, message)
}

// Writer returns an io.Writer that logs every Write to channel as one
// message. It also satisfies zapcore.WriteSyncer.
func (r *Registry) Writer(channel string) *Writer {
	r.mustInit()
	return &Writer{r: r, channel: channel}
}

// Channels returns the sorted names of every channel created so far,
// including failed ones.
func (r *Registry) Channels() []string {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names()
}

// IsOpen reports whether channel has a healthy open sink.
func (r *Registry) IsOpen(channel string) bool {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.channels[channel]
	return ok && e.sink != nil && e.err == nil
}

// Err returns the failure recorded for channel, or nil.
func (r *Registry) Err(channel string) error {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.channels[channel]; ok {
		return e.err
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (r *Registry) Stats() Snapshot {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	var failed int
	for _, e := range r.channels {
		if e.err != nil {
			failed++
		}
	}
	return r.stats.snapshot(len(r.channels), failed)
}

// Close flushes and closes every open sink exactly once. Later calls to
// Close return nil; later calls to Log return core.ErrClosed.
func (r *Registry) Close() error {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	for _, name := range r.names() {
		e := r.channels[name]
		if e.sink == nil {
			continue
		}
		if cerr := closeSink(e.sink); cerr != nil {
			err = multierr.Append(err, errors.Wrapf(cerr, "close channel %q", name))
		}
		e.sink = nil
	}
	return err
}

// acquire returns the entry for channel, creating and opening it if needed.
// A returned entry may already be failed. Caller must hold r.mu.
func (r *Registry) acquire(channel string) (*entry, error) {
	if r.closed {
		return nil, errors.Wrapf(core.ErrClosed, "channel %q", channel)
	}
	if e, ok := r.channels[channel]; ok {
		return e, nil
	}

	if err := ValidateName(channel); err != nil {
		r.reject(channel, err)
		return nil, err
	}
	key := r.fold.String(channel)
	if other, ok := r.folded[key]; ok {
		err := errors.Wrapf(core.ErrNameCollision, "channel %q collides with %q", channel, other)
		r.reject(channel, err)
		return nil, err
	}

	e := &entry{
		name: channel,
		path: filepath.Join(r.dir, channel+".log"),
	}
	r.channels[channel] = e
	r.folded[key] = channel

	sink, err := r.open(e.path)
	if err != nil {
		r.fail(e, errors.Wrapf(err, "open channel %q", channel))
		return e, nil
	}
	e.sink = sink
	return e, nil
}

// write appends message to e and flushes it. Caller must hold r.mu.
func (r *Registry) write(e *entry, message string) error {
	if e.err != nil {
		return e.err
	}

	n, err := io.WriteString(e.sink, message)
	if err == nil {
		err = flushSink(e.sink)
	}
	if err == nil && r.sync {
		err = e.sink.Sync()
	}
	if err != nil {
		r.fail(e, errors.Wrapf(err, "write channel %q", e.name))
		return e.err
	}

	r.stats.IncrementWritten(n)
	return nil
}

// syncChannel commits channel to stable storage.
func (r *Registry) syncChannel(channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.Wrapf(core.ErrClosed, "channel %q", channel)
	}
	e, ok := r.channels[channel]
	switch {
	case !ok:
		return nil
	case e.err != nil:
		return e.err
	}
	if err := e.sink.Sync(); err != nil {
		r.fail(e, errors.Wrapf(err, "sync channel %q", channel))
		return e.err
	}
	return nil
}

// fail marks e as failed, reports cause once and releases the sink.
// Caller must hold r.mu.
func (r *Registry) fail(e *entry, cause error) {
	e.err = errors.Mark(cause, core.ErrChannelFailed)
	r.stats.IncrementFailures()
	r.log.Error("diagnostic channel failed",
		zap.String("channel", e.name),
		zap.String("path", e.path),
		zap.Error(cause),
	)

	if e.sink != nil {
		if err := e.sink.Close(); err != nil {
			r.log.Warn("closing failed channel", zap.String("channel", e.name), zap.Error(err))
		}
		e.sink = nil
	}
}

func (r *Registry) reject(channel string, err error) {
	r.stats.IncrementRejected()
	r.log.Error("rejected diagnostic channel", zap.String("channel", channel), zap.Error(err))
}

// names returns the sorted channel names. Caller must hold r.mu.
func (r *Registry) names() []string {
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) mustInit() {
	if r == nil || r.channels == nil {
		panic(errors.AssertionFailedf("channel: registry used before NewRegistry"))
	}
}

// Writer adapts one channel to io.Writer.
type Writer struct {
	r       *Registry
	channel string
}

// Write logs p as one message.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.r.Log(w.channel, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sync commits the channel to stable storage. It is a no-op for a channel
// that has not been written yet.
func (w *Writer) Sync() error {
	return w.r.syncChannel(w.channel)
}

// Channel returns the channel name.
func (w *Writer) Channel() string {
	return w.channel
}

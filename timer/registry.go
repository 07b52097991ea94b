package timer

import (
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/philipp01105/diagkit/core"
)

// Registry maps timer names to start instants. It is safe for concurrent
// use.
type Registry struct {
	src   core.TickSource
	freq  int64
	freqF float64

	mu     sync.Mutex
	starts map[string]int64
}

// NewRegistry creates an empty registry reading ticks from src. It panics
// with an assertion failure if src is nil or reports a non-positive
// frequency.
func NewRegistry(src core.TickSource) *Registry {
	if src == nil {
		panic(errors.AssertionFailedf("timer: nil tick source"))
	}
	freq := src.Frequency()
	if freq <= 0 {
		panic(errors.AssertionFailedf("timer: tick source frequency %d is not positive", freq))
	}
	return &Registry{
		src:    src,
		freq:   freq,
		freqF:  float64(freq),
		starts: map[string]int64{},
	}
}

// Start (re)starts the named timer.
func (r *Registry) Start(name string) {
	r.mustInit()
	now := r.src.Now()
	r.mu.Lock()
	r.starts[name] = now
	r.mu.Unlock()
}

// Elapsed returns the seconds since the most recent Start of name.
func (r *Registry) Elapsed(name string) (float64, error) {
	ticks, err := r.elapsedTicks(name)
	if err != nil {
		return 0, err
	}
	return float64(ticks) / r.freqF, nil
}

// MustElapsed is like Elapsed but panics if name was never started.
func (r *Registry) MustElapsed(name string) float64 {
	seconds, err := r.Elapsed(name)
	if err != nil {
		panic(err)
	}
	return seconds
}

// Duration is like Elapsed but returns a time.Duration.
func (r *Registry) Duration(name string) (time.Duration, error) {
	ticks, err := r.elapsedTicks(name)
	if err != nil {
		return 0, err
	}
	freq := time.Duration(r.freq)
	whole := time.Duration(ticks/r.freq) * time.Second
	return whole + time.Duration(ticks%r.freq)*time.Second/freq, nil
}

// Started reports whether name has been started.
func (r *Registry) Started(name string) bool {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.starts[name]
	return ok
}

// Names returns the sorted names of all started timers.
func (r *Registry) Names() []string {
	r.mustInit()
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.starts))
	for name := range r.starts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Frequency returns the tick frequency captured at construction.
func (r *Registry) Frequency() int64 {
	r.mustInit()
	return r.freq
}

// Reset forgets every timer.
func (r *Registry) Reset() {
	r.mustInit()
	r.mu.Lock()
	clear(r.starts)
	r.mu.Unlock()
}

func (r *Registry) elapsedTicks(name string) (int64, error) {
	r.mustInit()
	r.mu.Lock()
	start, ok := r.starts[name]
	r.mu.Unlock()
	if !ok {
		return 0, errors.WithAssertionFailure(errors.Wrapf(core.ErrNotStarted, "timer %q", name))
	}
	return r.src.Now() - start, nil
}

func (r *Registry) mustInit() {
	if r == nil || r.starts == nil {
		panic(errors.AssertionFailedf("timer: registry used before NewRegistry"))
	}
}

package timer

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/diagkit/core"
)

func TestRegistry_ImmediateElapsed(t *testing.T) {
	r := NewRegistry(core.NewMonotonicClock())

	r.Start("t")
	got, err := r.Elapsed("t")
	if err != nil {
		t.Fatalf("Elapsed() error = %v", err)
	}
	if got < 0 {
		t.Errorf("Elapsed() = %v, want non-negative", got)
	}
	if got > 0.01 {
		t.Errorf("Elapsed() = %v, want close to zero", got)
	}
}

func TestRegistry_SleepElapsed(t *testing.T) {
	r := NewRegistry(core.NewMonotonicClock())

	const d = 20 * time.Millisecond
	r.Start("sleep")
	time.Sleep(d)
	got := r.MustElapsed("sleep")

	if got < d.Seconds() {
		t.Errorf("Elapsed() = %vs, want at least %vs", got, d.Seconds())
	}
	if got > d.Seconds()+0.5 {
		t.Errorf("Elapsed() = %vs, too far above %vs", got, d.Seconds())
	}
}

func TestRegistry_ManualClock(t *testing.T) {
	clock := core.NewManualClock(1000)
	r := NewRegistry(clock)

	r.Start("a")
	clock.Advance(1500 * time.Millisecond)

	got, err := r.Elapsed("a")
	if err != nil {
		t.Fatalf("Elapsed() error = %v", err)
	}
	if got != 1.5 {
		t.Errorf("Elapsed() = %v, want 1.5", got)
	}

	d, err := r.Duration("a")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if d != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", d)
	}
}

func TestRegistry_DurationExact(t *testing.T) {
	tests := []struct {
		freq  int64
		ticks int64
		want  time.Duration
	}{
		{1e9, int64(2600*time.Hour + time.Nanosecond), 2600*time.Hour + time.Nanosecond},
		{1e9, 1, time.Nanosecond},
		{3, 7, 2*time.Second + 333333333*time.Nanosecond},
		{1000, 86400001, 24*time.Hour + time.Millisecond},
	}

	for _, tt := range tests {
		clock := core.NewManualClock(tt.freq)
		r := NewRegistry(clock)
		r.Start("t")
		clock.Tick(tt.ticks)

		d, err := r.Duration("t")
		if err != nil {
			t.Fatalf("Duration() error = %v", err)
		}
		if d != tt.want {
			t.Errorf("%d ticks at %d Hz: Duration() = %v, want %v", tt.ticks, tt.freq, d, tt.want)
		}
	}
}

func TestRegistry_EpochReset(t *testing.T) {
	clock := core.NewManualClock(1_000_000)
	r := NewRegistry(clock)

	r.Start("phase")
	clock.Advance(5 * time.Second)
	r.Start("phase")
	clock.Advance(time.Second)

	if got := r.MustElapsed("phase"); got != 1 {
		t.Errorf("Elapsed() after restart = %v, want 1", got)
	}
}

func TestRegistry_ElapsedIsPure(t *testing.T) {
	clock := core.NewManualClock(10)
	r := NewRegistry(clock)

	r.Start("x")
	clock.Tick(20)
	first := r.MustElapsed("x")
	second := r.MustElapsed("x")
	if first != 2 || second != 2 {
		t.Errorf("Elapsed() = %v then %v, want 2 both times", first, second)
	}
}

func TestRegistry_IndependentTimers(t *testing.T) {
	clock := core.NewManualClock(1)
	r := NewRegistry(clock)

	r.Start("outer")
	clock.Tick(3)
	r.Start("inner")
	clock.Tick(2)

	got := map[string]float64{
		"outer": r.MustElapsed("outer"),
		"inner": r.MustElapsed("inner"),
	}
	want := map[string]float64{"outer": 5, "inner": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("elapsed mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_NeverStarted(t *testing.T) {
	r := NewRegistry(core.NewManualClock(1))

	_, err := r.Elapsed("missing")
	if !errors.Is(err, core.ErrNotStarted) {
		t.Errorf("Elapsed() error = %v, want ErrNotStarted", err)
	}
	if !errors.HasAssertionFailure(err) {
		t.Errorf("Elapsed() error = %v, want assertion failure", err)
	}
	if _, err := r.Duration("missing"); !errors.Is(err, core.ErrNotStarted) {
		t.Errorf("Duration() error = %v, want ErrNotStarted", err)
	}

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, core.ErrNotStarted) {
			t.Errorf("MustElapsed() recovered %v, want ErrNotStarted", rec)
		}
	}()
	r.MustElapsed("missing")
	t.Error("MustElapsed() did not panic")
}

func TestRegistry_FrequencyReadOnce(t *testing.T) {
	clock := core.NewManualClock(100)
	r := NewRegistry(clock)

	r.Start("f")
	for i := 0; i < 10; i++ {
		clock.Tick(1)
		r.MustElapsed("f")
	}
	if got := clock.FrequencyReads(); got != 1 {
		t.Errorf("Frequency() read %d times, want 1", got)
	}
	if got := r.Frequency(); got != 100 {
		t.Errorf("Frequency() = %d, want 100", got)
	}
}

func TestRegistry_NamesAndReset(t *testing.T) {
	r := NewRegistry(core.NewManualClock(1))

	r.Start("b")
	r.Start("a")
	r.Start("b")
	if diff := cmp.Diff([]string{"a", "b"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if !r.Started("a") || r.Started("c") {
		t.Error("Started() reports wrong state")
	}

	r.Reset()
	if len(r.Names()) != 0 {
		t.Errorf("Names() after Reset = %v", r.Names())
	}
	if _, err := r.Elapsed("a"); !errors.Is(err, core.ErrNotStarted) {
		t.Errorf("Elapsed() after Reset error = %v, want ErrNotStarted", err)
	}
}

func TestNewRegistry_Misuse(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil source", func() { NewRegistry(nil) }},
		{"zero frequency", func() { NewRegistry(core.NewManualClock(0)) }},
		{"zero value", func() { (&Registry{}).Start("x") }},
		{"nil registry", func() { (*Registry)(nil).Elapsed("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				rec := recover()
				err, ok := rec.(error)
				if !ok || !errors.HasAssertionFailure(err) {
					t.Errorf("recovered %v, want assertion failure", rec)
				}
			}()
			tt.fn()
		})
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry(core.NewMonotonicClock())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", g%2)
			for i := 0; i < 500; i++ {
				r.Start(name)
				if got := r.MustElapsed(name); got < 0 {
					t.Errorf("Elapsed() = %v, want non-negative", got)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func BenchmarkRegistry_StartElapsed(b *testing.B) {
	r := NewRegistry(core.NewMonotonicClock())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Start("bench")
		r.MustElapsed("bench")
	}
}

package core

import (
	"testing"
	"time"
)

func TestMonotonicClock_NonDecreasing(t *testing.T) {
	c := NewMonotonicClock()

	prev := c.Now()
	for i := 0; i < 1000; i++ {
		now := c.Now()
		if now < prev {
			t.Fatalf("Now() went backwards: %d after %d", now, prev)
		}
		prev = now
	}
}

func TestMonotonicClock_Frequency(t *testing.T) {
	c := NewMonotonicClock()

	before := c.Now()
	time.Sleep(5 * time.Millisecond)
	after := c.Now()

	elapsed := float64(after-before) / float64(c.Frequency())
	if elapsed < 0.005 {
		t.Errorf("expected at least 5ms between readings, got %.6fs", elapsed)
	}
	if elapsed > 1 {
		t.Errorf("expected well under a second between readings, got %.6fs", elapsed)
	}
}

func TestSystemClockIdempotent(t *testing.T) {
	a := SystemClock()
	b := SystemClock()
	if a != b {
		t.Error("SystemClock() returned different instances")
	}
	if a.Frequency() != int64(time.Second) {
		t.Errorf("Frequency() = %d, want %d", a.Frequency(), int64(time.Second))
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(1000)

	if got := c.Now(); got != 0 {
		t.Errorf("Now() = %d, want 0", got)
	}

	c.Tick(5)
	if got := c.Now(); got != 5 {
		t.Errorf("Now() after Tick(5) = %d, want 5", got)
	}

	c.Advance(2 * time.Second)
	if got := c.Now(); got != 2005 {
		t.Errorf("Now() after Advance(2s) = %d, want 2005", got)
	}

	c.Frequency()
	c.Frequency()
	if got := c.FrequencyReads(); got != 2 {
		t.Errorf("FrequencyReads() = %d, want 2", got)
	}
}

func TestManualClock_AdvanceLong(t *testing.T) {
	tests := []struct {
		freq int64
		d    time.Duration
		want int64
	}{
		{1e9, 10 * time.Second, 10e9},
		{1e9, time.Hour + 1500*time.Millisecond, 3601500000000},
		{1000, 24 * time.Hour, 86400000},
		{3, 1500 * time.Millisecond, 4},
	}

	for _, tt := range tests {
		c := NewManualClock(tt.freq)
		c.Advance(tt.d)
		if got := c.Now(); got != tt.want {
			t.Errorf("Advance(%v) at %d Hz: Now() = %d, want %d", tt.d, tt.freq, got, tt.want)
		}
	}
}

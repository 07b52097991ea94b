//go:build diagstats

package instrument

import "testing"

func TestStats(t *testing.T) {
	count := 0
	Stats(func() { count++ })
	if count != 1 {
		t.Errorf("Stats() ran fn %d times, want 1", count)
	}
}

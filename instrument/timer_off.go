//go:build !diagdebug && !diagtimer

package instrument

// TimerEnabled reports whether timer mode is compiled in.
const TimerEnabled = false

// TimerStart is a no-op without timer mode.
func TimerStart(name string) {}

// TimerElapsed returns 0 without timer mode.
func TimerElapsed(name string) float64 { return 0 }

// TimerPrint is a no-op without timer mode.
func TimerPrint(name string) {}

//go:build diagdebug || diagtimer

package instrument

import "github.com/philipp01105/diagkit/formatter"

// TimerEnabled reports whether timer mode is compiled in.
const TimerEnabled = true

// TimerStart (re)starts the named timer.
func TimerStart(name string) {
	Timers().Start(name)
}

// TimerElapsed returns the seconds since the last TimerStart(name).
func TimerElapsed(name string) float64 {
	if AssertionEnabled {
		return Timers().MustElapsed(name)
	}
	seconds, _ := Timers().Elapsed(name)
	return seconds
}

// TimerPrint writes "Timer 'name': <seconds>s" to the timer output.
func TimerPrint(name string) {
	_ = formatter.WriteLapse(getTimerOutput(), name, TimerElapsed(name))
}

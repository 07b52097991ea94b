// Package instrument is the call-site layer over the channel and timer
// registries. Which helpers do anything is decided when the program is
// built:
//
//	-tags diagdebug   Log, Logf, Debug, AssertExpensive; implies diagtimer and diagassert
//	-tags diagtimer   TimerStart, TimerElapsed, TimerPrint
//	-tags diagassert  Assert
//	-tags diagstats   Stats
//
// Without the tag a helper has an empty body, so the compiler drops the
// call and the registries behind it are never created. The DebugEnabled,
// TimerEnabled, AssertionEnabled and StatsEnabled constants let call
// sites skip building expensive arguments:
//
//	if instrument.DebugEnabled {
//	    instrument.Log("pivot", "support set ", dump(set), "\n")
//	}
//
// Enabled helpers use process-wide registries created on first use:
// Channels writes <channel>.log files into the working directory and Timers
// reads the system monotonic clock. Programs that want another directory or
// clock install their own registries with SetChannels and SetTimers before
// the first call. Go has no process-exit hook, so main should
//
//	defer instrument.Shutdown()
//
// to flush and close every channel file.
//
// TimerElapsed on a timer that was never started panics when assertion
// mode is compiled in. Without assertion mode the check is compiled out
// and the result is 0.
package instrument

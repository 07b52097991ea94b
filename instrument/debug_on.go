//go:build diagdebug

package instrument

import (
	"fmt"

	"github.com/philipp01105/diagkit/core"
	"github.com/philipp01105/diagkit/formatter"
)

// DebugEnabled reports whether debug mode is compiled in.
const DebugEnabled = true

// Log writes the concatenation of args to channel. Failures are reported
// by the registry and never reach the caller.
func Log(channel string, args ...any) {
	_ = Channels().Log(channel, formatter.Message(args...))
}

// Logf writes a formatted message to channel.
func Logf(channel, format string, args ...any) {
	_ = Channels().Log(channel, fmt.Sprintf(format, args...))
}

// Debug runs fn.
func Debug(fn func()) {
	fn()
}

// AssertExpensive panics with an assertion failure if check returns false.
func AssertExpensive(check func() bool, args ...any) {
	if !check() {
		panic(assertionFailure(core.GetCaller(1), args))
	}
}

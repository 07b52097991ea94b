//go:build !diagdebug

package instrument

// DebugEnabled reports whether debug mode is compiled in.
const DebugEnabled = false

// Log is a no-op without the diagdebug build tag.
func Log(channel string, args ...any) {}

// Logf is a no-op without the diagdebug build tag.
func Logf(channel, format string, args ...any) {}

// Debug is a no-op without the diagdebug build tag.
func Debug(fn func()) {}

// AssertExpensive is a no-op without the diagdebug build tag.
func AssertExpensive(check func() bool, args ...any) {}

//go:build !diagdebug && !diagassert

package instrument

// AssertionEnabled reports whether assertion mode is compiled in.
const AssertionEnabled = false

// Assert is a no-op without assertion mode.
func Assert(cond bool, args ...any) {}

//go:build diagdebug || diagassert

package instrument

import "github.com/philipp01105/diagkit/core"

// AssertionEnabled reports whether assertion mode is compiled in.
const AssertionEnabled = true

// Assert panics with an assertion failure if cond is false. The message is
// the concatenation of args.
func Assert(cond bool, args ...any) {
	if !cond {
		panic(assertionFailure(core.GetCaller(1), args))
	}
}

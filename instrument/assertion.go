//go:build diagdebug || diagassert

package instrument

import (
	"github.com/cockroachdb/errors"

	"github.com/philipp01105/diagkit/core"
	"github.com/philipp01105/diagkit/formatter"
)

func assertionFailure(caller core.CallerInfo, args []any) error {
	if len(args) == 0 {
		return errors.AssertionFailedf("assertion failed at %s", caller)
	}
	return errors.AssertionFailedf("assertion failed at %s: %s", caller, formatter.Message(args...))
}

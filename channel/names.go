package channel

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/philipp01105/diagkit/core"
)

// ValidateName reports whether name can be used as a channel name. The
// returned error matches core.ErrInvalidChannel.
func ValidateName(name string) error {
	switch name {
	case "":
		return errors.Wrap(core.ErrInvalidChannel, "empty name")
	case ".", "..":
		return errors.Wrapf(core.ErrInvalidChannel, "channel %q", name)
	}
	if !utf8.ValidString(name) {
		return errors.Wrapf(core.ErrInvalidChannel, "channel %q is not valid UTF-8", name)
	}
	for _, r := range name {
		if r == '/' || r == '\\' {
			return errors.Wrapf(core.ErrInvalidChannel, "channel %q contains a path separator", name)
		}
		if unicode.IsControl(r) {
			return errors.Wrapf(core.ErrInvalidChannel, "channel %q contains a control character", name)
		}
	}
	return nil
}

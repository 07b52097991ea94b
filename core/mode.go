package core

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Mode is a set of instrumentation modes.
type Mode uint8

const (
	// AssertionMode enables cheap assertions
	AssertionMode Mode = 1 << iota
	// DebugMode enables channel logging, debug blocks and expensive assertions
	DebugMode
	// TimerMode enables named timers
	TimerMode
	// StatsMode enables statistics blocks
	StatsMode
)

// NoMode is the empty set.
const NoMode Mode = 0

var modeNames = [...]struct {
	mode Mode
	name string
}{
	{AssertionMode, "assertion"},
	{DebugMode, "debug"},
	{TimerMode, "timer"},
	{StatsMode, "stats"},
}

// Has reports whether every mode in x is set in m.
func (m Mode) Has(x Mode) bool {
	return m&x == x
}

// Implied returns m plus the modes it implies. Debug mode always brings
// timer and assertion mode with it.
func (m Mode) Implied() Mode {
	if m.Has(DebugMode) {
		m |= TimerMode | AssertionMode
	}
	return m
}

// String returns the modes joined by "|", or "none".
func (m Mode) String() string {
	if m == NoMode {
		return "none"
	}
	var parts []string
	for _, mn := range modeNames {
		if m.Has(mn.mode) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseMode converts a comma or pipe separated list such as "debug,stats"
// to a Mode. Names are case-insensitive; "none" and the empty string yield
// NoMode.
func ParseMode(s string) (Mode, error) {
	var m Mode
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "", "none":
		case "assert", "assertion":
			m |= AssertionMode
		case "debug":
			m |= DebugMode
		case "timer", "timing":
			m |= TimerMode
		case "stats":
			m |= StatsMode
		default:
			return NoMode, errors.Newf("unknown mode %q", field)
		}
	}
	return m, nil
}

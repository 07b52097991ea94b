//go:build !diagstats

package instrument

// StatsEnabled reports whether stats mode is compiled in.
const StatsEnabled = false

// Stats is a no-op without the diagstats build tag.
func Stats(fn func()) {}

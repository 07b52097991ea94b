//go:build diagstats

package instrument

// StatsEnabled reports whether stats mode is compiled in.
const StatsEnabled = true

// Stats runs fn.
func Stats(fn func()) {
	fn()
}

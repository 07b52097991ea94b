// Package formatter builds the text that diagkit writes.
//
// Message concatenates its operands the way an output stream does: no
// separators, strings verbatim, integers in decimal, floats with six
// significant digits. Lapse renders a timer reading as
// "Timer 'name': 0.12346s" followed by a newline, with five significant
// digits.
//
// Both use a pooled bytes.Buffer internally and rely on strconv's Append
// functions for the common operand types, so the usual path allocates only
// the returned string. Buffers larger than 64 KiB are not returned to the
// pool to prevent a single large message from permanently inflating memory
// usage.
package formatter

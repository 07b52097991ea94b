package formatter

import (
	"bytes"
	"io"
	"strconv"
)

// Lapse formats a timer reading as "Timer 'name': <seconds>s\n".
func Lapse(name string, seconds float64) string {
	buf := getBuffer()
	AppendLapse(buf, name, seconds)
	s := buf.String()
	putBuffer(buf)
	return s
}

// WriteLapse writes the Lapse line to w in a single Write.
func WriteLapse(w io.Writer, name string, seconds float64) error {
	buf := getBuffer()
	AppendLapse(buf, name, seconds)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// AppendLapse appends the Lapse line to buf.
func AppendLapse(buf *bytes.Buffer, name string, seconds float64) {
	buf.WriteString("Timer '")
	buf.WriteString(name)
	buf.WriteString("': ")
	buf.Write(Seconds(buf.AvailableBuffer(), seconds))
	buf.WriteString("s\n")
}

// Seconds appends seconds with five significant digits to dst.
func Seconds(dst []byte, seconds float64) []byte {
	return strconv.AppendFloat(dst, seconds, 'g', 5, 64)
}

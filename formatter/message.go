package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Message concatenates args without separators.
func Message(args ...any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		if s, ok := args[0].(string); ok {
			return s
		}
	}

	buf := getBuffer()
	AppendMessage(buf, args...)
	s := buf.String()
	putBuffer(buf)
	return s
}

// WriteMessage writes the concatenation of args to w in a single Write.
func WriteMessage(w io.Writer, args ...any) error {
	buf := getBuffer()
	AppendMessage(buf, args...)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// AppendMessage appends the concatenation of args to buf.
func AppendMessage(buf *bytes.Buffer, args ...any) {
	for _, arg := range args {
		appendOperand(buf, arg)
	}
}

func appendOperand(buf *bytes.Buffer, arg any) {
	switch v := arg.(type) {
	case string:
		buf.WriteString(v)
	case []byte:
		buf.Write(v)
	case byte:
		buf.WriteByte(v)
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int8:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int16:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int32:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v, 10))
	case uint:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(v), 10))
	case uint16:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(v), 10))
	case uint32:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(v), 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), v, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), v, 'g', 6, 64))
	case float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), float64(v), 'g', 6, 32))
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), v))
	case error:
		buf.WriteString(v.Error())
	case fmt.Stringer:
		buf.WriteString(v.String())
	default:
		fmt.Fprint(buf, v)
	}
}

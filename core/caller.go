package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo contains information about a call site
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// String returns "file.go:line", or "unknown" when undefined.
func (c CallerInfo) String() string {
	if !c.Defined {
		return "unknown"
	}
	return c.ShortFile + ":" + strconv.Itoa(c.Line)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

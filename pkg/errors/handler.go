package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

func init() { SetHandler(nil) }

// SetHandler replaces the handler that receives reported errors and
// panics. Nil restores a LogHandler on the default logger.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerBox{h: h})
}

// Handler returns the installed handler.
func Handler() ErrorHandler { return current.Load().h }

// Report stamps err and hands it to the handler. Nil is ignored.
func Report(err *SparkError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress as a PanicError for op. It only
// works when deferred directly:
//
//	defer errors.Recover("showcase.Update")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, r))
	}
}

// RecoverWithCallback is Recover followed by fn, so the caller can put its
// own state back together once the panic has been reported.
func RecoverWithCallback(op string, fn func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(panicked(op, r))
	if fn != nil {
		fn(r)
	}
}

func panicked(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stack(),
		Timestamp:  time.Now(),
	}
}

// stack formats the frames below the recovery helpers, one
// "function file:line" entry per line.
func stack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(4, pcs)]
	frames := runtime.CallersFrames(pcs)
	var lines []string
	for {
		f, more := frames.Next()
		if f.Function != "" {
			lines = append(lines, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}

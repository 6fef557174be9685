package errors

import (
	"log/slog"

	"github.com/go-drift/spark/pkg/logging"
)

// LogHandler is an ErrorHandler that writes to a structured logger.
type LogHandler struct {
	// Logger receives the records. Nil uses logging.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Default()
}

// HandleError logs a SparkError.
func (h *LogHandler) HandleError(err *SparkError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Path != "" {
		attrs = append(attrs, "path", err.Path)
	}
	h.logger().Error("spark error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("spark panic", attrs...)
}

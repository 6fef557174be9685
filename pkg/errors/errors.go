// Package errors provides structured error handling for spark.
//
// The component core never fails; errors come from the ambient layer:
// loading and validating theme files, reading CLI configuration and
// running the showcase.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTheme indicates an invalid or unreadable theme.
	KindTheme
	// KindConfig indicates a configuration error.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTheme:
		return "theme"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SparkError is a categorized error with the operation that produced it.
type SparkError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// E builds a SparkError.
func E(op string, kind ErrorKind, err error) *SparkError {
	return &SparkError{Op: op, Kind: kind, Err: err}
}

// WithPath returns the error with Path set.
func (e *SparkError) WithPath(path string) *SparkError {
	e.Path = path
	return e
}

func (e *SparkError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SparkError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first SparkError in err's chain.
func KindOf(err error) ErrorKind {
	var se *SparkError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "showcase.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// TokenError reports a theme token that failed validation.
type TokenError struct {
	// Token is the dotted token path (e.g., "colors.main").
	Token string
	// Value is the raw value found in the file.
	Value string
	// Reason explains the failure.
	Reason string
}

func (e *TokenError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("token %s: %s", e.Token, e.Reason)
	}
	return fmt.Sprintf("token %s=%q: %s", e.Token, e.Value, e.Reason)
}

// Is reports whether target is a TokenError for the same token.
func (e *TokenError) Is(target error) bool {
	t, ok := target.(*TokenError)
	return ok && t.Token == e.Token
}

// Re-exported so callers need a single errors import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// ErrorHandler receives errors reported by spark.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SparkError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

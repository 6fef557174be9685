package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/spark/pkg/logging"
)

type testHandler struct {
	onError func(*SparkError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *SparkError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestSparkErrorString(t *testing.T) {
	err := E("theme.Load", KindTheme, New("boom"))
	if got, want := err.Error(), "theme.Load [theme]: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = err.WithPath("dark.yaml")
	if !strings.Contains(err.Error(), "path=dark.yaml") {
		t.Errorf("error string %q should contain path", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindTheme, "theme"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindOfAndUnwrap(t *testing.T) {
	token := &TokenError{Token: "colors.main", Value: "#zz", Reason: "invalid hex color"}
	wrapped := fmt.Errorf("loading: %w", E("theme.Parse", KindTheme, token))

	if got := KindOf(wrapped); got != KindTheme {
		t.Errorf("KindOf() = %v, want theme", got)
	}
	if !Is(wrapped, &TokenError{Token: "colors.main"}) {
		t.Error("expected wrapped error to match token")
	}
	if Is(wrapped, &TokenError{Token: "colors.support"}) {
		t.Error("unexpected match for a different token")
	}
	if KindOf(New("plain")) != KindUnknown {
		t.Error("plain errors should be KindUnknown")
	}
}

func TestTokenErrorString(t *testing.T) {
	err := &TokenError{Token: "radii.small", Reason: "must not be negative"}
	if got, want := err.Error(), "token radii.small: must not be negative"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "showcase.Update"
	if got, want := err.Error(), "panic in showcase.Update: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *SparkError
	SetHandler(&testHandler{onError: func(err *SparkError) { captured = err }})
	defer SetHandler(nil)

	Report(E("config.Load", KindConfig, New("missing")))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "config.Load" {
		t.Errorf("Op = %q, want %q", captured.Op, "config.Load")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if !strings.Contains(captured.StackTrace, "TestRecover") {
		t.Errorf("StackTrace = %q, want the panicking test frame", captured.StackTrace)
	}
}

func TestSetHandler_NilRestoresLogHandler(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("Handler() = %T, want *LogHandler", Handler())
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: logging.New(logging.Config{Format: "text", Output: &buf}), Verbose: true}

	h.HandleError(E("theme.Load", KindTheme, New("bad")).WithPath("x.yaml"))
	h.HandlePanic(&PanicError{Op: "op", Value: "v", StackTrace: "frame"})
	h.HandleError(nil)
	h.HandlePanic(nil)

	out := buf.String()
	for _, want := range []string{"op=theme.Load", "kind=theme", "path=x.yaml", "stack=frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

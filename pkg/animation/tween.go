package animation

import (
	"time"

	"github.com/go-drift/spark/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End for progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) Tween[float64] {
	return Tween[float64]{Begin: begin, End: end, Lerp: Lerp}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) Tween[graphics.Color] {
	return Tween[graphics.Color]{Begin: begin, End: end, Lerp: graphics.Lerp}
}

// Transition plays a tween over a fixed duration measured with the
// package clock. It has no timer of its own; callers sample it from their
// render loop.
type Transition[T any] struct {
	Tween    Tween[T]
	Curve    Curve
	Duration time.Duration
	start    time.Time
}

// NewTransition starts a transition now.
func NewTransition[T any](tween Tween[T], curve Curve, duration time.Duration) *Transition[T] {
	return &Transition[T]{Tween: tween, Curve: curve, Duration: duration, start: Now()}
}

// Value samples the transition at the current clock time.
func (t *Transition[T]) Value() T {
	if t.Duration <= 0 {
		return t.Tween.End
	}
	fraction := float64(Now().Sub(t.start)) / float64(t.Duration)
	return t.Tween.Evaluate(Progress(t.Curve, fraction))
}

// Done reports whether the transition reached its end.
func (t *Transition[T]) Done() bool {
	return t.Duration <= 0 || Now().Sub(t.start) >= t.Duration
}

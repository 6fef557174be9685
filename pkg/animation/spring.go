package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring moves a value toward a target with damped spring physics, one
// frame per Step. It is used to smooth positions that jump, such as a
// slider thumb following quantized values.
type Spring struct {
	spring   harmonica.Spring
	position float64
	velocity float64
}

// NewSpring creates a spring stepped at fps frames per second. Higher
// frequency responds faster; damping below 1 overshoots.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Position returns the current position.
func (s *Spring) Position() float64 { return s.position }

// Jump moves the spring to position with no velocity.
func (s *Spring) Jump(position float64) {
	s.position = position
	s.velocity = 0
}

// Step advances one frame toward target and returns the new position.
func (s *Spring) Step(target float64) float64 {
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, target)
	return s.position
}

// Settled reports whether the spring rests within epsilon of target.
func (s *Spring) Settled(target, epsilon float64) bool {
	return math.Abs(s.position-target) < epsilon && math.Abs(s.velocity) < epsilon
}

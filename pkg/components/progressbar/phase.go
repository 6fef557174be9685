package progressbar

import (
	"fmt"
	"time"

	"github.com/go-drift/spark/pkg/animation"
)

// StepInterval is the time between two animation steps of the
// indeterminate bar. Hosts arm their periodic task with it.
const StepInterval = time.Second

// AnimationPhase is a step of the indeterminate animation loop.
type AnimationPhase int

const (
	// PhaseNone means the bar is not animating.
	PhaseNone AnimationPhase = iota
	// PhaseEaseIn grows the indicator from the leading edge.
	PhaseEaseIn
	// PhaseEaseOut slides the indicator out past the trailing edge.
	PhaseEaseOut
	// PhaseReset jumps the collapsed indicator back to the leading edge.
	PhaseReset
)

// Next returns the phase that follows p in the loop
// EaseIn → EaseOut → Reset → EaseIn. PhaseNone starts the loop.
func (p AnimationPhase) Next() AnimationPhase {
	switch p {
	case PhaseEaseIn:
		return PhaseEaseOut
	case PhaseEaseOut:
		return PhaseReset
	default:
		return PhaseEaseIn
	}
}

// Curve is the easing used to move into this phase's geometry.
func (p AnimationPhase) Curve() animation.Curve {
	switch p {
	case PhaseEaseIn:
		return animation.EaseIn
	case PhaseEaseOut:
		return animation.EaseOut
	default:
		return animation.Linear
	}
}

// Duration is how long the move into this phase's geometry lasts. Reset
// is instantaneous.
func (p AnimationPhase) Duration() time.Duration {
	switch p {
	case PhaseEaseIn, PhaseEaseOut:
		return StepInterval
	default:
		return 0
	}
}

func (p AnimationPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseEaseIn:
		return "easeIn"
	case PhaseEaseOut:
		return "easeOut"
	case PhaseReset:
		return "reset"
	default:
		return fmt.Sprintf("AnimationPhase(%d)", int(p))
	}
}

// AnimationStatus asks the host to arm or disarm its periodic task.
type AnimationStatus int

const (
	// AnimationStart arms the periodic task.
	AnimationStart AnimationStatus = iota
	// AnimationStop cancels it.
	AnimationStop
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationStart:
		return "start"
	case AnimationStop:
		return "stop"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

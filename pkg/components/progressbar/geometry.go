package progressbar

import "github.com/go-drift/spark/pkg/animation"

// indicatorRatio is the share of the track covered by the indicator at
// the end of the ease-in phase.
const indicatorRatio = 0.66

// AnimatedGeometry places the indeterminate indicator on its track.
type AnimatedGeometry struct {
	IndicatorWidth    float64
	LeadingSpaceWidth float64
}

// Lerp interpolates between two geometries.
func (g AnimatedGeometry) Lerp(to AnimatedGeometry, t float64) AnimatedGeometry {
	return AnimatedGeometry{
		IndicatorWidth:    animation.Lerp(g.IndicatorWidth, to.IndicatorWidth, t),
		LeadingSpaceWidth: animation.Lerp(g.LeadingSpaceWidth, to.LeadingSpaceWidth, t),
	}
}

// Tween returns a tween from g to the given geometry.
func (g AnimatedGeometry) Tween(to AnimatedGeometry) animation.Tween[AnimatedGeometry] {
	return animation.Tween[AnimatedGeometry]{Begin: g, End: to, Lerp: AnimatedGeometry.Lerp}
}

// GeometryUseCase computes the geometry of a phase on a track.
type GeometryUseCase interface {
	Geometry(phase AnimationPhase, trackWidth float64) AnimatedGeometry
}

// GeometryFunc adapts a function to [GeometryUseCase].
type GeometryFunc func(phase AnimationPhase, trackWidth float64) AnimatedGeometry

// Geometry calls f.
func (f GeometryFunc) Geometry(phase AnimationPhase, trackWidth float64) AnimatedGeometry {
	return f(phase, trackWidth)
}

// DefaultGeometry is the standard loop: the indicator grows to two thirds
// of the track, slides out past the trailing edge, then jumps back.
var DefaultGeometry GeometryUseCase = GeometryFunc(defaultGeometry)

func defaultGeometry(phase AnimationPhase, trackWidth float64) AnimatedGeometry {
	if trackWidth < 0 {
		trackWidth = 0
	}
	switch phase {
	case PhaseEaseIn:
		return AnimatedGeometry{IndicatorWidth: trackWidth * indicatorRatio}
	case PhaseEaseOut:
		return AnimatedGeometry{LeadingSpaceWidth: trackWidth}
	default:
		return AnimatedGeometry{}
	}
}

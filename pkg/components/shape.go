package components

import (
	"fmt"

	"github.com/go-drift/spark/pkg/theme"
)

// Shape selects the corner treatment of a component.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRounded
	ShapePill
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRounded:
		return "rounded"
	case ShapePill:
		return "pill"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// CornerRadius returns the theme radius for shape.
func CornerRadius(shape Shape, th *theme.Theme) float64 {
	switch shape {
	case ShapeRounded:
		return th.Radii.Large
	case ShapePill:
		return th.Radii.Full
	default:
		return th.Radii.None
	}
}

// Size is the shared small/medium/large scale.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// EnabledOpacity is the opacity of a component's content: fully opaque when
// enabled and the theme's dim3 otherwise.
func EnabledOpacity(enabled bool, th *theme.Theme) float64 {
	if enabled {
		return 1
	}
	return th.Dims.Dim3
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spark/pkg/theme"
)

func TestCornerRadius(t *testing.T) {
	th := theme.DefaultLight()
	assert.Equal(t, th.Radii.None, CornerRadius(ShapeSquare, th))
	assert.Equal(t, th.Radii.Large, CornerRadius(ShapeRounded, th))
	assert.Equal(t, th.Radii.Full, CornerRadius(ShapePill, th))
}

func TestEnabledOpacity(t *testing.T) {
	th := theme.DefaultDark()
	assert.Equal(t, 1.0, EnabledOpacity(true, th))
	assert.Equal(t, th.Dims.Dim3, EnabledOpacity(false, th))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "pill", ShapePill.String())
	assert.Equal(t, "Shape(9)", Shape(9).String())
	assert.Equal(t, "large", SizeLarge.String())
}

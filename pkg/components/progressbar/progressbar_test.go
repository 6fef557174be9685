package progressbar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/theme"
)

func TestViewModel_ClampsValue(t *testing.T) {
	vm := NewViewModel(nil, theme.IntentMain, components.ShapeRounded, 1.5)
	assert.Equal(t, 1.0, vm.Value().Value())

	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 2: 1, math.NaN(): 0} {
		vm.SetValue(in)
		assert.Equal(t, want, vm.Value().Value(), "SetValue(%v)", in)
	}
}

func TestGetColors(t *testing.T) {
	th := theme.DefaultLight()
	for _, intent := range theme.Intents {
		c := GetColors(intent, th)
		assert.Equal(t, th.Colors.Token(intent).Color, c.Indicator, "%s", intent)
		assert.Equal(t, th.Colors.OnBackground.WithAlpha(th.Dims.Dim4), c.Track)
	}
}

func TestViewModel_Republishes(t *testing.T) {
	vm := NewViewModel(theme.DefaultLight(), theme.IntentSuccess, components.ShapeSquare, 0)
	var published []Colors
	vm.Colors().AddListener(func(c Colors) { published = append(published, c) })

	dark := theme.DefaultDark()
	vm.SetTheme(dark)
	vm.SetIntent(theme.IntentInfo)
	vm.SetShape(components.ShapeRounded)

	assert.Equal(t, []Colors{GetColors(theme.IntentSuccess, dark), GetColors(theme.IntentInfo, dark)}, published)
	assert.Equal(t, dark.Radii.Large, vm.CornerRadius().Value())
}

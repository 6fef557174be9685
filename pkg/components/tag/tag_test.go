package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

func TestGetColors(t *testing.T) {
	th := theme.DefaultLight()
	for _, intent := range theme.Intents {
		token := th.Colors.Token(intent)
		assert.Equal(t, Colors{token.Color, token.Color, token.OnColor}, GetColors(intent, VariantFilled, th), "%s", intent)
		assert.Equal(t, Colors{graphics.ColorTransparent, token.Color, token.Color}, GetColors(intent, VariantOutlined, th), "%s", intent)
		assert.Equal(t, Colors{token.Container, token.Container, token.OnContainer}, GetColors(intent, VariantTinted, th), "%s", intent)
	}
}

func TestGetSizes(t *testing.T) {
	th := theme.DefaultLight()
	assert.Equal(t, th.Radii.Full, GetSizes(VariantFilled, components.ShapePill, th).CornerRadius)
	assert.Equal(t, th.Radii.Large, GetSizes(VariantFilled, components.ShapeRounded, th).CornerRadius)
	assert.Equal(t, th.Border.Small, GetSizes(VariantOutlined, components.ShapeSquare, th).BorderWidth)
	assert.Zero(t, GetSizes(VariantTinted, components.ShapeSquare, th).BorderWidth)
}

func TestViewModel(t *testing.T) {
	vm := NewViewModel(nil, theme.IntentInfo, VariantFilled, "beta")
	var published []Colors
	vm.Colors().AddListener(func(c Colors) { published = append(published, c) })

	vm.SetVariant(VariantOutlined)
	vm.SetIntent(theme.IntentAlert)
	vm.SetText("new")

	th := theme.DefaultLight()
	assert.Equal(t, []Colors{
		GetColors(theme.IntentInfo, VariantOutlined, th),
		GetColors(theme.IntentAlert, VariantOutlined, th),
	}, published)
	assert.Equal(t, "new", vm.Text().Value())
	assert.Equal(t, th.Border.Small, vm.Sizes().Value().BorderWidth)
}

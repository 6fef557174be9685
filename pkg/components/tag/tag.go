// Package tag implements the tag component: a short label on an intent
// colored chip.
package tag

import (
	"fmt"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Variant is the fill style of a tag.
type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantTinted
)

func (v Variant) String() string {
	switch v {
	case VariantFilled:
		return "filled"
	case VariantOutlined:
		return "outlined"
	case VariantTinted:
		return "tinted"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Colors are the fills of a tag.
type Colors struct {
	Background graphics.Color
	Border     graphics.Color
	Foreground graphics.Color
}

// GetColors returns the tag colors for intent and variant.
func GetColors(intent theme.Intent, variant Variant, th *theme.Theme) Colors {
	token := th.Colors.Token(intent)
	switch variant {
	case VariantOutlined:
		return Colors{Background: graphics.ColorTransparent, Border: token.Color, Foreground: token.Color}
	case VariantTinted:
		return Colors{Background: token.Container, Border: token.Container, Foreground: token.OnContainer}
	default:
		return Colors{Background: token.Color, Border: token.Color, Foreground: token.OnColor}
	}
}

// Sizes are the dimensions of a tag.
type Sizes struct {
	Height       float64
	Padding      float64
	IconSpacing  float64
	BorderWidth  float64
	CornerRadius float64
}

// GetSizes returns the tag dimensions for shape.
func GetSizes(variant Variant, shape components.Shape, th *theme.Theme) Sizes {
	s := Sizes{
		Height:       20,
		Padding:      th.Spacing.Medium,
		IconSpacing:  th.Spacing.Small,
		CornerRadius: th.Radii.Full,
	}
	if shape != components.ShapePill {
		s.CornerRadius = components.CornerRadius(shape, th)
	}
	if variant == VariantOutlined {
		s.BorderWidth = th.Border.Small
	}
	return s
}

// ViewModel holds a tag's state.
type ViewModel struct {
	th      *theme.Theme
	intent  theme.Intent
	variant Variant
	shape   components.Shape

	text   *core.Observable[string]
	icon   *core.Observable[string]
	colors *core.Observable[Colors]
	sizes  *core.Observable[Sizes]
}

// NewViewModel creates a pill tag. A nil theme uses the default light
// theme.
func NewViewModel(th *theme.Theme, intent theme.Intent, variant Variant, text string) *ViewModel {
	if th == nil {
		th = theme.DefaultLight()
	}
	return &ViewModel{
		th:      th,
		intent:  intent,
		variant: variant,
		shape:   components.ShapePill,
		text:    core.NewObservable(text),
		icon:    core.NewObservable(""),
		colors:  core.NewObservable(GetColors(intent, variant, th)),
		sizes:   core.NewObservable(GetSizes(variant, components.ShapePill, th)),
	}
}

// Text publishes the label.
func (vm *ViewModel) Text() *core.Observable[string] { return vm.text }

// Icon publishes the icon, empty when none.
func (vm *ViewModel) Icon() *core.Observable[string] { return vm.icon }

// Colors publishes the background, border and foreground.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// Sizes publishes the paddings, radius and border width.
func (vm *ViewModel) Sizes() *core.Observable[Sizes] { return vm.sizes }

// SetText changes the label.
func (vm *ViewModel) SetText(text string) { vm.text.Set(text) }

// SetIcon changes the icon.
func (vm *ViewModel) SetIcon(icon string) { vm.icon.Set(icon) }

// SetIntent changes the color intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.colors.Set(GetColors(intent, vm.variant, vm.th))
}

// SetVariant changes the variant.
func (vm *ViewModel) SetVariant(variant Variant) {
	vm.variant = variant
	vm.colors.Set(GetColors(vm.intent, variant, vm.th))
	vm.sizes.Set(GetSizes(variant, vm.shape, vm.th))
}

// SetShape changes the corner radius.
func (vm *ViewModel) SetShape(shape components.Shape) {
	vm.shape = shape
	vm.sizes.Set(GetSizes(vm.variant, shape, vm.th))
}

// SetTheme republishes every themed value from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.colors.Set(GetColors(vm.intent, vm.variant, th))
	vm.sizes.Set(GetSizes(vm.variant, vm.shape, th))
}

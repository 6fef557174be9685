// Package popover implements an intent colored popover bubble with an
// optional arrow.
package popover

import (
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Colors are the fills of a popover.
type Colors struct {
	Background graphics.Color
	Foreground graphics.Color
}

// GetColors returns the popover colors. The surface intent uses the plain
// surface; every other intent uses its container shade.
func GetColors(intent theme.Intent, th *theme.Theme) Colors {
	if intent == theme.IntentSurface {
		return Colors{Background: th.Colors.Surface, Foreground: th.Colors.OnSurface}
	}
	token := th.Colors.Token(intent)
	return Colors{Background: token.Container, Foreground: token.OnContainer}
}

// Spacings are the inner paddings of a popover.
type Spacings struct {
	Horizontal float64
	Vertical   float64
}

// GetSpacings returns the popover paddings.
func GetSpacings(th *theme.Theme) Spacings {
	return Spacings{Horizontal: th.Spacing.Large, Vertical: th.Spacing.Medium}
}

// ArrowSize is the height of the arrow in points.
const ArrowSize = 8

// ViewModel holds a popover's state.
type ViewModel struct {
	th     *theme.Theme
	intent theme.Intent

	text         *core.Observable[string]
	showArrow    *core.Observable[bool]
	presented    *core.Observable[bool]
	colors       *core.Observable[Colors]
	spacings     *core.Observable[Spacings]
	cornerRadius *core.Observable[float64]
}

// NewViewModel creates a hidden popover with an arrow. A nil theme uses
// the default light theme.
func NewViewModel(th *theme.Theme, intent theme.Intent, text string) *ViewModel {
	if th == nil {
		th = theme.DefaultLight()
	}
	return &ViewModel{
		th:           th,
		intent:       intent,
		text:         core.NewObservable(text),
		showArrow:    core.NewObservable(true),
		presented:    core.NewObservable(false),
		colors:       core.NewObservable(GetColors(intent, th)),
		spacings:     core.NewObservable(GetSpacings(th)),
		cornerRadius: core.NewObservable(th.Radii.Large),
	}
}

// Text publishes the content.
func (vm *ViewModel) Text() *core.Observable[string] { return vm.text }

// ShowArrow publishes whether the arrow is drawn.
func (vm *ViewModel) ShowArrow() *core.Observable[bool] { return vm.showArrow }

// Presented publishes whether the popover is visible.
func (vm *ViewModel) Presented() *core.Observable[bool] { return vm.presented }

// Colors publishes the background and foreground.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// Spacings publishes the paddings.
func (vm *ViewModel) Spacings() *core.Observable[Spacings] { return vm.spacings }

// CornerRadius publishes the corner radius.
func (vm *ViewModel) CornerRadius() *core.Observable[float64] { return vm.cornerRadius }

// SetText changes the content.
func (vm *ViewModel) SetText(text string) { vm.text.Set(text) }

// SetShowArrow shows or hides the arrow.
func (vm *ViewModel) SetShowArrow(show bool) { vm.showArrow.Set(show) }

// Present shows the popover.
func (vm *ViewModel) Present() { vm.presented.Set(true) }

// Dismiss hides the popover.
func (vm *ViewModel) Dismiss() { vm.presented.Set(false) }

// TogglePresented shows a hidden popover and hides a visible one.
func (vm *ViewModel) TogglePresented() { vm.presented.Set(!vm.presented.Value()) }

// SetIntent changes the color intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.colors.Set(GetColors(intent, vm.th))
}

// SetTheme republishes every themed value from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.colors.Set(GetColors(vm.intent, th))
	vm.spacings.Set(GetSpacings(th))
	vm.cornerRadius.Set(th.Radii.Large)
}

// Package button implements the button component: a title and icon per
// control state, intent colors for five variants and pressed feedback.
package button

import (
	"fmt"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/theme"
)

// Variant is the fill style of a button.
type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantTinted
	VariantGhost
	VariantContrast
)

var variantNames = [...]string{"filled", "outlined", "tinted", "ghost", "contrast"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Alignment places the icon relative to the title.
type Alignment int

const (
	IconLeading Alignment = iota
	IconTrailing
)

// Config is the initial configuration of a button.
type Config struct {
	Theme     *theme.Theme
	Intent    theme.Intent
	Variant   Variant
	Size      components.Size
	Shape     components.Shape
	Alignment Alignment
	Title     string
	Icon      string
	Disabled  bool
}

// ViewModel holds a button's state and published values.
type ViewModel struct {
	th        *theme.Theme
	intent    theme.Intent
	variant   Variant
	size      components.Size
	shape     components.Shape
	alignment Alignment
	status    control.Status
	titles    control.PropertyStates[string]
	icons     control.PropertyStates[string]
	colors    Colors

	currentColors *core.Observable[CurrentColors]
	height        *core.Observable[float64]
	spacings      *core.Observable[Spacings]
	border        *core.Observable[Border]
	title         *core.Observable[string]
	icon          *core.Observable[string]
	iconAlignment *core.Observable[Alignment]
	opacity       *core.Observable[float64]
	tapped        *core.Notifier
}

// NewViewModel creates a button from cfg. Title and Icon become the
// normal-state values.
func NewViewModel(cfg Config) *ViewModel {
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultLight()
	}
	vm := &ViewModel{
		th:        cfg.Theme,
		intent:    cfg.Intent,
		variant:   cfg.Variant,
		size:      cfg.Size,
		shape:     cfg.Shape,
		alignment: cfg.Alignment,
		status:    control.NewStatus().WithEnabled(!cfg.Disabled),
		tapped:    core.NewNotifier(),
	}
	if cfg.Title != "" {
		vm.titles.Set(control.StateNormal, cfg.Title)
	}
	if cfg.Icon != "" {
		vm.icons.Set(control.StateNormal, cfg.Icon)
	}
	vm.colors = GetColors(vm.intent, vm.variant, vm.th)
	vm.currentColors = core.NewObservable(vm.colors.Current(false))
	vm.height = core.NewObservable(Height(vm.size))
	vm.spacings = core.NewObservable(GetSpacings(vm.size, vm.th))
	vm.border = core.NewObservable(GetBorder(vm.variant, vm.shape, vm.th))
	vm.title = core.NewObservable(vm.titles.Resolve(vm.status, ""))
	vm.icon = core.NewObservable(vm.icons.Resolve(vm.status, ""))
	vm.iconAlignment = core.NewObservable(vm.alignment)
	vm.opacity = core.NewObservable(components.EnabledOpacity(vm.status.IsEnabled, vm.th))
	return vm
}

// Colors publishes the colors resolved for the pressed flag.
func (vm *ViewModel) Colors() *core.Observable[CurrentColors] { return vm.currentColors }

// Height publishes the button height for its size.
func (vm *ViewModel) Height() *core.Observable[float64] { return vm.height }

// Spacings publishes the paddings and icon gap.
func (vm *ViewModel) Spacings() *core.Observable[Spacings] { return vm.spacings }

// Border publishes the corner radius and border width.
func (vm *ViewModel) Border() *core.Observable[Border] { return vm.border }

// Title publishes the title for the current status.
func (vm *ViewModel) Title() *core.Observable[string] { return vm.title }

// Icon publishes the icon for the current status.
func (vm *ViewModel) Icon() *core.Observable[string] { return vm.icon }

// Alignment publishes the icon placement.
func (vm *ViewModel) Alignment() *core.Observable[Alignment] { return vm.iconAlignment }

// Opacity publishes 1, or the disabled dim.
func (vm *ViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Tapped fires when an enabled button is tapped.
func (vm *ViewModel) Tapped() *core.Notifier { return vm.tapped }

// Status returns the live control status.
func (vm *ViewModel) Status() control.Status { return vm.status }

// SetTitle sets the title shown in state. An empty title clears the
// override.
func (vm *ViewModel) SetTitle(title string, state control.State) {
	if title == "" {
		vm.titles.Clear(state)
	} else {
		vm.titles.Set(state, title)
	}
	vm.title.Set(vm.titles.Resolve(vm.status, ""))
}

// TitleForState returns the title stored for state.
func (vm *ViewModel) TitleForState(state control.State) (string, bool) {
	return vm.titles.Value(state)
}

// SetIcon sets the icon shown in state. An empty icon clears the override.
func (vm *ViewModel) SetIcon(icon string, state control.State) {
	if icon == "" {
		vm.icons.Clear(state)
	} else {
		vm.icons.Set(state, icon)
	}
	vm.icon.Set(vm.icons.Resolve(vm.status, ""))
}

// SetPressed updates the highlighted flag. Disabled buttons ignore
// presses.
func (vm *ViewModel) SetPressed(pressed bool) {
	if pressed && !vm.status.IsEnabled {
		return
	}
	if vm.status.IsHighlighted == pressed {
		return
	}
	vm.setStatus(vm.status.WithHighlighted(pressed))
}

// SetEnabled enables or disables the button. Disabling releases a press.
func (vm *ViewModel) SetEnabled(enabled bool) {
	if vm.status.IsEnabled == enabled {
		return
	}
	status := vm.status.WithEnabled(enabled)
	if !enabled {
		status = status.WithHighlighted(false)
	}
	vm.setStatus(status)
	vm.opacity.Set(components.EnabledOpacity(enabled, vm.th))
}

// SetSelected updates the selected flag.
func (vm *ViewModel) SetSelected(selected bool) {
	if vm.status.IsSelected == selected {
		return
	}
	vm.setStatus(vm.status.WithSelected(selected))
}

// Tap notifies Tapped listeners when the button is enabled.
func (vm *ViewModel) Tap() {
	if vm.status.IsEnabled {
		vm.tapped.Notify()
	}
}

func (vm *ViewModel) setStatus(status control.Status) {
	vm.status = status
	vm.currentColors.Set(vm.colors.Current(status.IsHighlighted))
	vm.title.Set(vm.titles.Resolve(status, ""))
	vm.icon.Set(vm.icons.Resolve(status, ""))
}

// SetTheme republishes every themed value.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.updateColors()
	vm.spacings.Set(GetSpacings(vm.size, th))
	vm.border.Set(GetBorder(vm.variant, vm.shape, th))
	vm.opacity.Set(components.EnabledOpacity(vm.status.IsEnabled, th))
}

// SetIntent changes the color intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.updateColors()
}

// SetVariant changes the variant and its colors.
func (vm *ViewModel) SetVariant(variant Variant) {
	vm.variant = variant
	vm.updateColors()
	vm.border.Set(GetBorder(variant, vm.shape, vm.th))
}

// SetSize changes the height and spacings.
func (vm *ViewModel) SetSize(size components.Size) {
	vm.size = size
	vm.height.Set(Height(size))
	vm.spacings.Set(GetSpacings(size, vm.th))
}

// SetShape changes the corner radius.
func (vm *ViewModel) SetShape(shape components.Shape) {
	vm.shape = shape
	vm.border.Set(GetBorder(vm.variant, shape, vm.th))
}

// SetAlignment moves the icon before or after the title.
func (vm *ViewModel) SetAlignment(alignment Alignment) {
	vm.alignment = alignment
	vm.iconAlignment.Set(alignment)
}

func (vm *ViewModel) updateColors() {
	vm.colors = GetColors(vm.intent, vm.variant, vm.th)
	vm.currentColors.Set(vm.colors.Current(vm.status.IsHighlighted))
}

// Package slider implements a continuous or stepped slider.
package slider

import (
	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Colors are the fills of a slider.
type Colors struct {
	Track        graphics.Color
	Indicator    graphics.Color
	Handle       graphics.Color
	HandleActive graphics.Color
}

// GetColors returns the slider colors for intent.
func GetColors(intent theme.Intent, th *theme.Theme) Colors {
	token := th.Colors.Token(intent)
	return Colors{
		Track:        th.Colors.OnSurface.WithAlpha(th.Dims.Dim4),
		Indicator:    token.Color,
		Handle:       token.Color,
		HandleActive: token.Variant,
	}
}

// Config is the initial configuration of a slider.
type Config struct {
	Theme  *theme.Theme
	Intent theme.Intent
	Shape  components.Shape
	Bounds Bounds
	// Step snaps values to multiples of Step; zero is continuous.
	Step  float64
	Value float64
}

// ViewModel holds a slider's state. Dragging sets the highlighted flag so
// the handle color resolves to its active shade.
type ViewModel struct {
	th     *theme.Theme
	intent theme.Intent
	shape  components.Shape
	bounds Bounds
	step   float64
	status control.Status
	handle control.PropertyStates[graphics.Color]
	colors Colors

	value        *core.Observable[float64]
	fraction     *core.Observable[float64]
	trackColors  *core.Observable[Colors]
	handleColor  *core.Observable[graphics.Color]
	cornerRadius *core.Observable[float64]
	opacity      *core.Observable[float64]
}

// NewViewModel creates a slider. Empty bounds default to [0, 1].
func NewViewModel(cfg Config) *ViewModel {
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultLight()
	}
	if !cfg.Bounds.Valid() {
		cfg.Bounds = Bounds{Min: 0, Max: 1}
	}
	vm := &ViewModel{
		th:     cfg.Theme,
		intent: cfg.Intent,
		shape:  cfg.Shape,
		bounds: cfg.Bounds,
		step:   cfg.Step,
		status: control.NewStatus(),
	}
	value := Quantize(cfg.Value, vm.bounds, vm.step)
	vm.colors = GetColors(vm.intent, vm.th)
	vm.storeHandleColors()
	vm.value = core.NewObservable(value)
	vm.fraction = core.NewObservable(vm.bounds.Fraction(value))
	vm.trackColors = core.NewObservable(vm.colors)
	vm.handleColor = core.NewObservable(vm.handle.Resolve(vm.status, vm.colors.Handle))
	vm.cornerRadius = core.NewObservable(components.CornerRadius(vm.shape, vm.th))
	vm.opacity = core.NewObservable(1.0)
	return vm
}

// Value publishes the quantized value.
func (vm *ViewModel) Value() *core.Observable[float64] { return vm.value }

// Fraction publishes the value's position on the track in [0, 1].
func (vm *ViewModel) Fraction() *core.Observable[float64] { return vm.fraction }

// Colors publishes the track and indicator fills.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.trackColors }

// HandleColor publishes the handle fill, active while dragging.
func (vm *ViewModel) HandleColor() *core.Observable[graphics.Color] { return vm.handleColor }

// CornerRadius publishes the track radius for the slider's shape.
func (vm *ViewModel) CornerRadius() *core.Observable[float64] { return vm.cornerRadius }

// Opacity publishes 1, or the disabled dim.
func (vm *ViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Bounds returns the value range.
func (vm *ViewModel) Bounds() Bounds { return vm.bounds }

// Step returns the quantization step; zero means continuous.
func (vm *ViewModel) Step() float64 { return vm.step }

// Status returns the slider's control flags.
func (vm *ViewModel) Status() control.Status { return vm.status }

// SetValue publishes v after quantization.
func (vm *ViewModel) SetValue(v float64) {
	q := Quantize(v, vm.bounds, vm.step)
	vm.value.Set(q)
	vm.fraction.Set(vm.bounds.Fraction(q))
}

// Increment moves the value by one step, or by a tenth of the range when
// the slider is continuous. Negative n decrements.
func (vm *ViewModel) Increment(n int) {
	if !vm.status.IsEnabled {
		return
	}
	delta := vm.step
	if delta <= 0 {
		delta = (vm.bounds.Max - vm.bounds.Min) / 10
	}
	vm.SetValue(vm.value.Value() + float64(n)*delta)
}

// BeginDrag marks the handle active.
func (vm *ViewModel) BeginDrag() {
	if !vm.status.IsEnabled {
		return
	}
	vm.setStatus(vm.status.WithHighlighted(true))
}

// DidMove maps a drag position on a track of trackWidth to a value.
func (vm *ViewModel) DidMove(x, trackWidth float64) {
	if !vm.status.IsEnabled {
		return
	}
	vm.SetValue(ValueAt(x, trackWidth, vm.bounds))
}

// EndDrag releases the handle.
func (vm *ViewModel) EndDrag() {
	vm.setStatus(vm.status.WithHighlighted(false))
}

// SetBounds changes the range and requantizes the value.
func (vm *ViewModel) SetBounds(bounds Bounds) {
	if !bounds.Valid() {
		return
	}
	vm.bounds = bounds
	vm.SetValue(vm.value.Value())
}

// SetStep changes the step and requantizes the value.
func (vm *ViewModel) SetStep(step float64) {
	vm.step = step
	vm.SetValue(vm.value.Value())
}

// SetEnabled enables or disables input. Disabling ends a drag.
func (vm *ViewModel) SetEnabled(enabled bool) {
	status := vm.status.WithEnabled(enabled)
	if !enabled {
		status = status.WithHighlighted(false)
	}
	vm.setStatus(status)
	vm.opacity.Set(components.EnabledOpacity(enabled, vm.th))
}

// SetIntent changes the color intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.updateColors()
}

// SetShape changes the track shape.
func (vm *ViewModel) SetShape(shape components.Shape) {
	vm.shape = shape
	vm.cornerRadius.Set(components.CornerRadius(shape, vm.th))
}

// SetTheme republishes every themed value from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.updateColors()
	vm.cornerRadius.Set(components.CornerRadius(vm.shape, th))
	vm.opacity.Set(components.EnabledOpacity(vm.status.IsEnabled, th))
}

func (vm *ViewModel) setStatus(status control.Status) {
	vm.status = status
	vm.handleColor.Set(vm.handle.Resolve(status, vm.colors.Handle))
}

func (vm *ViewModel) storeHandleColors() {
	vm.handle.Set(control.StateNormal, vm.colors.Handle)
	vm.handle.Set(control.StateHighlighted, vm.colors.HandleActive)
}

func (vm *ViewModel) updateColors() {
	vm.colors = GetColors(vm.intent, vm.th)
	vm.storeHandleColors()
	vm.trackColors.Set(vm.colors)
	vm.handleColor.Set(vm.handle.Resolve(vm.status, vm.colors.Handle))
}

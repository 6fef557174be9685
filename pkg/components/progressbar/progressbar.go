// Package progressbar implements the determinate progress bar and the
// indeterminate bar's animation stepper.
package progressbar

import (
	"math"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/theme"
)

// ViewModel is a determinate progress bar.
type ViewModel struct {
	th     *theme.Theme
	intent theme.Intent
	shape  components.Shape

	value        *core.Observable[float64]
	colors       *core.Observable[Colors]
	cornerRadius *core.Observable[float64]
}

// NewViewModel creates a bar showing value, clamped to [0, 1].
func NewViewModel(th *theme.Theme, intent theme.Intent, shape components.Shape, value float64) *ViewModel {
	if th == nil {
		th = theme.DefaultLight()
	}
	return &ViewModel{
		th:           th,
		intent:       intent,
		shape:        shape,
		value:        core.NewObservable(clampValue(value)),
		colors:       core.NewObservable(GetColors(intent, th)),
		cornerRadius: core.NewObservable(components.CornerRadius(shape, th)),
	}
}

// Value publishes the progress in [0, 1].
func (vm *ViewModel) Value() *core.Observable[float64] { return vm.value }

// Colors publishes the track and indicator colors.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// CornerRadius publishes the bar radius.
func (vm *ViewModel) CornerRadius() *core.Observable[float64] { return vm.cornerRadius }

// SetValue publishes value clamped to [0, 1]. NaN counts as 0.
func (vm *ViewModel) SetValue(value float64) {
	vm.value.Set(clampValue(value))
}

// SetTheme republishes the themed values.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.colors.Set(GetColors(vm.intent, th))
	vm.cornerRadius.Set(components.CornerRadius(vm.shape, th))
}

// SetIntent republishes the colors.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.colors.Set(GetColors(intent, vm.th))
}

// SetShape republishes the radius.
func (vm *ViewModel) SetShape(shape components.Shape) {
	vm.shape = shape
	vm.cornerRadius.Set(components.CornerRadius(shape, vm.th))
}

func clampValue(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

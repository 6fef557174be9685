// Package rating implements a star rating that can be displayed or edited.
package rating

import (
	"math"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// DefaultCount is the number of stars when none is given.
const DefaultCount = 5

// Fills returns the fill of each of count stars for value. The value is
// rounded to the nearest half star, so every fill is 0, 0.5 or 1.
func Fills(value float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	rounded := math.Round(value*2) / 2
	fills := make([]float64, count)
	for i := range fills {
		fills[i] = math.Max(0, math.Min(1, rounded-float64(i)))
	}
	return fills
}

// Colors are the fills of the stars.
type Colors struct {
	Fill   graphics.Color
	Stroke graphics.Color
	Empty  graphics.Color
}

// FillStates returns the per-state star fill color: the intent color at
// rest and its pressed shade while a star is highlighted.
func FillStates(intent theme.Intent, th *theme.Theme) *control.PropertyStates[graphics.Color] {
	token := th.Colors.Token(intent)
	states := control.NewPropertyStates(token.Color)
	states.Set(control.StateHighlighted, token.Variant)
	return states
}

// StarSize returns the edge of a star in points.
func StarSize(size components.Size) float64 {
	switch size {
	case components.SizeSmall:
		return 12
	case components.SizeLarge:
		return 24
	default:
		return 16
	}
}

// Config is the initial configuration of a rating.
type Config struct {
	Theme    *theme.Theme
	Intent   theme.Intent
	Size     components.Size
	Count    int
	Value    float64
	Editable bool
}

// ViewModel holds a rating's state. While the user presses a star the
// control is highlighted and the fills preview the pressed rating.
type ViewModel struct {
	th          *theme.Theme
	intent      theme.Intent
	count       int
	editable    bool
	status      control.Status
	fillStates  *control.PropertyStates[graphics.Color]
	highlighted int

	value     *core.Observable[float64]
	fills     *core.Observable[[]float64]
	colors    *core.Observable[Colors]
	starSize  *core.Observable[float64]
	opacity   *core.Observable[float64]
	highlight *core.Observable[int]
}

// NewViewModel creates a rating. Count defaults to DefaultCount.
func NewViewModel(cfg Config) *ViewModel {
	if cfg.Theme == nil {
		cfg.Theme = theme.DefaultLight()
	}
	if cfg.Count <= 0 {
		cfg.Count = DefaultCount
	}
	vm := &ViewModel{
		th:          cfg.Theme,
		intent:      cfg.Intent,
		count:       cfg.Count,
		editable:    cfg.Editable,
		status:      control.NewStatus(),
		highlighted: -1,
	}
	value := vm.clamp(cfg.Value)
	vm.fillStates = FillStates(vm.intent, vm.th)
	vm.value = core.NewObservable(value)
	vm.fills = core.NewObservable(Fills(value, vm.count))
	vm.colors = core.NewObservable(vm.resolveColors())
	vm.starSize = core.NewObservable(StarSize(cfg.Size))
	vm.opacity = core.NewObservable(1.0)
	vm.highlight = core.NewObservable(-1)
	return vm
}

// Value publishes the rating in [0, count].
func (vm *ViewModel) Value() *core.Observable[float64] { return vm.value }

// Fills publishes the fill of every star.
func (vm *ViewModel) Fills() *core.Observable[[]float64] { return vm.fills }

// Highlighted publishes the index of the pressed star, or -1.
func (vm *ViewModel) Highlighted() *core.Observable[int] { return vm.highlight }

// Colors publishes the star colors for the current status.
func (vm *ViewModel) Colors() *core.Observable[Colors] { return vm.colors }

// StarSize publishes the star size in points.
func (vm *ViewModel) StarSize() *core.Observable[float64] { return vm.starSize }

// Opacity publishes 1, or the disabled dim.
func (vm *ViewModel) Opacity() *core.Observable[float64] { return vm.opacity }

// Count returns the number of stars.
func (vm *ViewModel) Count() int { return vm.count }

// Status returns the rating's control flags.
func (vm *ViewModel) Status() control.Status { return vm.status }

// SetValue publishes value clamped to [0, count].
func (vm *ViewModel) SetValue(value float64) {
	value = vm.clamp(value)
	vm.value.Set(value)
	if vm.highlighted < 0 {
		vm.fills.Set(Fills(value, vm.count))
	}
}

// Press highlights star index. Out of range indexes and read-only or
// disabled ratings are ignored.
func (vm *ViewModel) Press(index int) {
	if !vm.interactive() || index < 0 || index >= vm.count {
		return
	}
	vm.highlighted = index
	vm.status = vm.status.WithHighlighted(true)
	vm.highlight.Set(index)
	vm.colors.Set(vm.resolveColors())
	vm.fills.Set(Fills(float64(index+1), vm.count))
}

// Release ends a press without changing the value.
func (vm *ViewModel) Release() {
	if vm.highlighted < 0 {
		return
	}
	vm.highlighted = -1
	vm.status = vm.status.WithHighlighted(false)
	vm.highlight.Set(-1)
	vm.colors.Set(vm.resolveColors())
	vm.fills.Set(Fills(vm.value.Value(), vm.count))
}

// Tap rates index+1 stars.
func (vm *ViewModel) Tap(index int) {
	if !vm.interactive() || index < 0 || index >= vm.count {
		return
	}
	vm.Release()
	vm.SetValue(float64(index + 1))
}

// SetEditable turns input on or off. A read-only rating drops any press.
func (vm *ViewModel) SetEditable(editable bool) {
	vm.editable = editable
	if !editable {
		vm.Release()
	}
}

// SetEnabled enables or disables the rating.
func (vm *ViewModel) SetEnabled(enabled bool) {
	if !enabled {
		vm.Release()
	}
	vm.status = vm.status.WithEnabled(enabled)
	vm.opacity.Set(components.EnabledOpacity(enabled, vm.th))
}

// SetSize changes the star size.
func (vm *ViewModel) SetSize(size components.Size) {
	vm.starSize.Set(StarSize(size))
}

// SetIntent changes the fill intent.
func (vm *ViewModel) SetIntent(intent theme.Intent) {
	vm.intent = intent
	vm.fillStates = FillStates(intent, vm.th)
	vm.colors.Set(vm.resolveColors())
}

// SetTheme republishes the colors from th.
func (vm *ViewModel) SetTheme(th *theme.Theme) {
	vm.th = th
	vm.fillStates = FillStates(vm.intent, th)
	vm.colors.Set(vm.resolveColors())
	vm.opacity.Set(components.EnabledOpacity(vm.status.IsEnabled, th))
}

func (vm *ViewModel) interactive() bool {
	return vm.editable && vm.status.IsEnabled
}

func (vm *ViewModel) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(float64(vm.count), v))
}

func (vm *ViewModel) resolveColors() Colors {
	fill := vm.fillStates.Resolve(vm.status, vm.th.Colors.Main.Color)
	return Colors{
		Fill:   fill,
		Stroke: fill,
		Empty:  vm.th.Colors.OnSurface.WithAlpha(vm.th.Dims.Dim4),
	}
}

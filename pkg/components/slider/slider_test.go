package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/theme"
)

func TestQuantize(t *testing.T) {
	bounds := Bounds{Min: 0, Max: 10}
	tests := []struct {
		name  string
		value float64
		step  float64
		want  float64
	}{
		{"continuous", 3.3, 0, 3.3},
		{"below min", -4, 1, 0},
		{"above max", 12, 1, 10},
		{"round down", 3.4, 1, 3},
		{"round up", 3.5, 1, 4},
		{"coarse step", 6.9, 2.5, 7.5},
		{"uneven range stays in bounds", 9.9, 3, 9},
		{"nan", math.NaN(), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantize(tt.value, bounds, tt.step), 1e-9)
		})
	}
}

func TestQuantize_DecimalSteps(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		bounds Bounds
		step   float64
		want   float64
	}{
		{"max of 0.3", 0.3, Bounds{Min: 0, Max: 0.3}, 0.1, 0.3},
		{"max of 0.7", 0.7, Bounds{Min: 0, Max: 0.7}, 0.1, 0.7},
		{"above max of 0.7", 2, Bounds{Min: 0, Max: 0.7}, 0.1, 0.7},
		{"inner value", 0.29, Bounds{Min: 0, Max: 1}, 0.1, 0.3},
		{"half steps", 21.3, Bounds{Min: 16, Max: 28}, 0.5, 21.5},
		{"offset min", 0.98, Bounds{Min: 0.05, Max: 1.05}, 0.1, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.value, tt.bounds, tt.step))
		})
	}
}

func TestQuantize_OffsetRange(t *testing.T) {
	assert.InDelta(t, 15, Quantize(14, Bounds{Min: 5, Max: 25}, 5), 1e-9)
	assert.InDelta(t, -0.5, Quantize(-0.6, Bounds{Min: -1, Max: 1}, 0.5), 1e-9)
}

func TestValueAt(t *testing.T) {
	bounds := Bounds{Min: 10, Max: 20}
	assert.Equal(t, 10.0, ValueAt(-5, 100, bounds))
	assert.Equal(t, 15.0, ValueAt(50, 100, bounds))
	assert.Equal(t, 20.0, ValueAt(150, 100, bounds))
	assert.Equal(t, 10.0, ValueAt(50, 0, bounds))
}

func TestBoundsFraction(t *testing.T) {
	b := Bounds{Min: 2, Max: 6}
	assert.Equal(t, 0.5, b.Fraction(4))
	assert.Equal(t, 1.0, b.Fraction(9))
	assert.Equal(t, 0.0, Bounds{}.Fraction(1))
}

func TestDidMove_Quantizes(t *testing.T) {
	vm := NewViewModel(Config{Bounds: Bounds{Min: 0, Max: 100}, Step: 10})
	var values []float64
	vm.Value().AddListener(func(v float64) { values = append(values, v) })

	vm.BeginDrag()
	vm.DidMove(33, 200)
	vm.DidMove(140, 200)
	vm.DidMove(500, 200)
	vm.EndDrag()

	assert.Equal(t, []float64{20, 70, 100}, values)
	assert.Equal(t, 1.0, vm.Fraction().Value())
}

func TestDidMove_TrackEndReachesMax(t *testing.T) {
	for _, top := range []float64{0.3, 0.7, 1} {
		vm := NewViewModel(Config{Bounds: Bounds{Min: 0, Max: top}, Step: 0.1})
		vm.BeginDrag()
		vm.DidMove(100, 100)
		vm.EndDrag()
		assert.Equal(t, top, vm.Value().Value(), "max %v", top)
		assert.Equal(t, 1.0, vm.Fraction().Value(), "max %v", top)
	}
}

func TestHandleColor_ResolvesWhileDragging(t *testing.T) {
	th := theme.DefaultLight()
	vm := NewViewModel(Config{Theme: th, Intent: theme.IntentSupport})
	colors := GetColors(theme.IntentSupport, th)

	assert.Equal(t, colors.Handle, vm.HandleColor().Value())
	vm.BeginDrag()
	assert.Equal(t, colors.HandleActive, vm.HandleColor().Value())
	vm.EndDrag()
	assert.Equal(t, colors.Handle, vm.HandleColor().Value())
}

func TestDisabled_IgnoresInput(t *testing.T) {
	th := theme.DefaultLight()
	vm := NewViewModel(Config{Theme: th, Value: 0.5})
	vm.SetEnabled(false)

	vm.BeginDrag()
	vm.DidMove(0, 100)
	vm.Increment(1)

	assert.Equal(t, 0.5, vm.Value().Value())
	assert.False(t, vm.Status().IsHighlighted)
	assert.Equal(t, th.Dims.Dim3, vm.Opacity().Value())
}

func TestIncrement(t *testing.T) {
	stepped := NewViewModel(Config{Bounds: Bounds{Min: 0, Max: 5}, Step: 1, Value: 2})
	stepped.Increment(2)
	assert.Equal(t, 4.0, stepped.Value().Value())
	stepped.Increment(5)
	assert.Equal(t, 5.0, stepped.Value().Value())

	continuous := NewViewModel(Config{})
	continuous.Increment(3)
	assert.InDelta(t, 0.3, continuous.Value().Value(), 1e-9)
}

func TestSetBoundsAndStep_Requantize(t *testing.T) {
	vm := NewViewModel(Config{Bounds: Bounds{Min: 0, Max: 10}, Value: 7.3})
	assert.InDelta(t, 7.3, vm.Value().Value(), 1e-9)

	vm.SetStep(2)
	assert.Equal(t, 8.0, vm.Value().Value())

	vm.SetBounds(Bounds{Min: 0, Max: 4})
	assert.Equal(t, 4.0, vm.Value().Value())

	vm.SetBounds(Bounds{Min: 3, Max: 3})
	assert.Equal(t, Bounds{Min: 0, Max: 4}, vm.Bounds(), "empty bounds are ignored")
}

func TestSetTheme(t *testing.T) {
	vm := NewViewModel(Config{Shape: components.ShapePill})
	dark := theme.DefaultDark()
	vm.SetTheme(dark)
	assert.Equal(t, GetColors(theme.IntentMain, dark), vm.Colors().Value())
	assert.Equal(t, dark.Radii.Full, vm.CornerRadius().Value())
}

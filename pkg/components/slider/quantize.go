package slider

import (
	"math"
	"strconv"
	"strings"
)

// Bounds is the value range of a slider.
type Bounds struct {
	Min float64
	Max float64
}

// Valid reports whether the range is non-empty.
func (b Bounds) Valid() bool {
	return b.Max > b.Min
}

// Clamp limits v to the range.
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Min, math.Min(b.Max, v))
}

// Fraction maps v onto [0, 1].
func (b Bounds) Fraction(v float64) float64 {
	if !b.Valid() {
		return 0
	}
	return (b.Clamp(v) - b.Min) / (b.Max - b.Min)
}

// Quantize clamps v to bounds and snaps it to the nearest multiple of step
// above Min. A step of zero or less leaves the value continuous. The snapped
// value never exceeds Max even when the range is not a multiple of step, and
// is rounded to the decimal precision of Min and step.
func Quantize(v float64, bounds Bounds, step float64) float64 {
	if math.IsNaN(v) {
		return bounds.Min
	}
	v = bounds.Clamp(v)
	if step <= 0 || !bounds.Valid() {
		return v
	}
	steps := math.Round((v - bounds.Min) / step)
	if steps*step > bounds.Max-bounds.Min+step*1e-9 {
		steps--
	}
	snapped := bounds.Min + steps*step
	if p := max(decimals(step), decimals(bounds.Min)); p < 15 {
		scale := math.Pow(10, float64(p))
		snapped = math.Round(snapped*scale) / scale
	}
	return bounds.Clamp(snapped)
}

// decimals counts the digits after the decimal point in the shortest
// representation of f.
func decimals(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// ValueAt maps a position x on a track of trackWidth onto bounds.
func ValueAt(x, trackWidth float64, bounds Bounds) float64 {
	if trackWidth <= 0 {
		return bounds.Min
	}
	fraction := math.Max(0, math.Min(1, x/trackWidth))
	return bounds.Min + fraction*(bounds.Max-bounds.Min)
}

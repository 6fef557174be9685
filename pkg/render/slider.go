package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/slider"
	"github.com/go-drift/spark/pkg/graphics"
)

// SliderView draws a slider track with its handle.
type SliderView struct {
	base
	width    int
	fraction float64
	colors   slider.Colors
	handle   graphics.Color
	opacity  float64
	thumb    float64
	hasThumb bool
}

// NewSliderView binds to vm. The track spans width columns, handle
// included.
func NewSliderView(vm *slider.ViewModel, width int, background graphics.Color) *SliderView {
	v := &SliderView{base: newBase(background), width: max(2, width)}
	bind(&v.base, vm.Fraction(), &v.fraction)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.HandleColor(), &v.handle)
	bind(&v.base, vm.Opacity(), &v.opacity)
	return v
}

// Width returns the track width in columns.
func (v *SliderView) Width() int { return v.width }

// SetWidth resizes the track.
func (v *SliderView) SetWidth(width int) {
	v.width = max(2, width)
	v.dirty = true
}

// SetThumb overrides the drawn handle position with a fraction in [0, 1].
// The showcase uses it to draw a smoothed handle while the value jumps.
func (v *SliderView) SetThumb(fraction float64) {
	v.thumb = fraction
	v.hasThumb = true
	v.dirty = true
}

// View renders the slider.
func (v *SliderView) View() string {
	return v.render(v.draw)
}

func (v *SliderView) draw() string {
	fraction := v.fraction
	if v.hasThumb {
		fraction = v.thumb
	}
	fraction = math.Max(0, math.Min(1, fraction))
	track := v.width - 1
	filled := int(math.Round(fraction * float64(track)))

	indicator := lipgloss.NewStyle().Foreground(v.faded(v.colors.Indicator, v.opacity))
	rest := lipgloss.NewStyle().Foreground(v.faded(v.colors.Track, v.opacity))
	handle := lipgloss.NewStyle().Foreground(v.faded(v.handle, v.opacity)).Bold(true)

	return indicator.Render(strings.Repeat("━", filled)) +
		handle.Render("●") +
		rest.Render(strings.Repeat("─", track-filled))
}

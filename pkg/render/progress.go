package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/animation"
	"github.com/go-drift/spark/pkg/components/progressbar"
	"github.com/go-drift/spark/pkg/graphics"
)

// ProgressBarView draws a determinate progress bar.
type ProgressBarView struct {
	base
	width  int
	value  float64
	colors progressbar.Colors
}

// NewProgressBarView binds to vm.
func NewProgressBarView(vm *progressbar.ViewModel, width int, background graphics.Color) *ProgressBarView {
	v := &ProgressBarView{base: newBase(background), width: max(1, width)}
	bind(&v.base, vm.Value(), &v.value)
	bind(&v.base, vm.Colors(), &v.colors)
	return v
}

// View renders the progress bar.
func (v *ProgressBarView) View() string {
	return v.render(func() string {
		filled := int(math.Round(v.value * float64(v.width)))
		return drawBar(&v.base, v.colors, v.width, 0, filled, 1)
	})
}

func drawBar(b *base, colors progressbar.Colors, width, leading, filled int, opacity float64) string {
	leading = max(0, min(width, leading))
	filled = max(0, min(width-leading, filled))
	track := lipgloss.NewStyle().Foreground(b.color(colors.Track))
	indicator := lipgloss.NewStyle().Foreground(b.faded(colors.Indicator, opacity))
	return track.Render(strings.Repeat("━", leading)) +
		indicator.Render(strings.Repeat("━", filled)) +
		track.Render(strings.Repeat("━", width-leading-filled))
}

// IndeterminateBarView draws the indeterminate bar. Each new geometry is
// reached through a transition that uses the phase's curve and duration,
// so the bar animates smoothly between the view model's discrete steps.
type IndeterminateBarView struct {
	base
	vm         *progressbar.IndeterminateViewModel
	width      int
	colors     progressbar.Colors
	opacity    float64
	phase      progressbar.AnimationPhase
	current    progressbar.AnimatedGeometry
	transition *animation.Transition[progressbar.AnimatedGeometry]
}

// NewIndeterminateBarView binds to vm and reports the track width to it.
func NewIndeterminateBarView(vm *progressbar.IndeterminateViewModel, width int, background graphics.Color) *IndeterminateBarView {
	v := &IndeterminateBarView{base: newBase(background), vm: vm, width: max(1, width)}
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Opacity(), &v.opacity)
	bind(&v.base, vm.Phase(), &v.phase)
	v.subs.Add(vm.Geometry().Bind(v.animateTo))
	vm.UpdateAnimatedData(float64(v.width))
	return v
}

// SetWidth resizes the track and republishes the geometry for it.
func (v *IndeterminateBarView) SetWidth(width int) {
	v.width = max(1, width)
	v.dirty = true
	v.vm.UpdateAnimatedData(float64(v.width))
}

// Animating reports whether a transition is still in flight. Hosts keep
// redrawing while it is.
func (v *IndeterminateBarView) Animating() bool {
	return v.transition != nil && !v.transition.Done()
}

func (v *IndeterminateBarView) animateTo(target progressbar.AnimatedGeometry) {
	from := v.sample()
	v.transition = animation.NewTransition(from.Tween(target), v.phase.Curve(), v.phase.Duration())
	v.dirty = true
}

func (v *IndeterminateBarView) sample() progressbar.AnimatedGeometry {
	if v.transition == nil {
		return v.current
	}
	v.current = v.transition.Value()
	return v.current
}

// Current returns the geometry drawn right now.
func (v *IndeterminateBarView) Current() progressbar.AnimatedGeometry {
	return v.sample()
}

// View samples the running transition; it is never cached.
func (v *IndeterminateBarView) View() string {
	g := v.sample()
	v.dirty = false
	leading := int(math.Round(g.LeadingSpaceWidth))
	filled := int(math.Round(g.IndicatorWidth))
	return drawBar(&v.base, v.colors, v.width, leading, filled, v.opacity)
}

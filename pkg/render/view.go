package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/graphics"
)

// View is a component drawn as a block of terminal text.
type View interface {
	View() string
	Close()
}

// base carries the bookkeeping shared by every view: its bindings, the
// background it composites onto and the cached output.
type base struct {
	subs       core.Subscriptions
	background graphics.Color
	dirty      bool
	cache      string
}

func newBase(background graphics.Color) base {
	return base{background: background, dirty: true}
}

// SetBackground changes the color translucent fills are composited onto.
func (b *base) SetBackground(bg graphics.Color) {
	b.background = bg
	b.dirty = true
}

// Close drops every binding.
func (b *base) Close() {
	b.subs.Dispose()
}

// render returns the cached output, calling draw when a bound value
// changed since the last call.
func (b *base) render(draw func() string) string {
	if b.dirty {
		b.cache = draw()
		b.dirty = false
	}
	return b.cache
}

func (b *base) color(c graphics.Color) lipgloss.Color {
	return Color(c, b.background)
}

func (b *base) faded(c graphics.Color, opacity float64) lipgloss.Color {
	return lipgloss.Color(Fade(c, opacity, b.background).Hex())
}

// bind mirrors o into dst and marks the view dirty on every change.
func bind[T any](b *base, o *core.Observable[T], dst *T) {
	b.subs.Add(o.Bind(func(v T) {
		*dst = v
		b.dirty = true
	}))
}

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/rating"
	"github.com/go-drift/spark/pkg/graphics"
)

// RatingView draws one glyph per star.
type RatingView struct {
	base
	fills   []float64
	colors  rating.Colors
	opacity float64
}

// NewRatingView binds to vm.
func NewRatingView(vm *rating.ViewModel, background graphics.Color) *RatingView {
	v := &RatingView{base: newBase(background)}
	bind(&v.base, vm.Fills(), &v.fills)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Opacity(), &v.opacity)
	return v
}

// Glyph is the character drawn for a star fill.
func Glyph(fill float64) string {
	switch {
	case fill >= 1:
		return "★"
	case fill > 0:
		return "⯪"
	default:
		return "☆"
	}
}

// View renders the rating.
func (v *RatingView) View() string {
	return v.render(v.draw)
}

func (v *RatingView) draw() string {
	filled := lipgloss.NewStyle().Foreground(v.faded(v.colors.Fill, v.opacity))
	empty := lipgloss.NewStyle().Foreground(v.faded(v.colors.Empty, v.opacity))
	stars := make([]string, len(v.fills))
	for i, fill := range v.fills {
		style := filled
		if fill == 0 {
			style = empty
		}
		stars[i] = style.Render(Glyph(fill))
	}
	return strings.Join(stars, " ")
}

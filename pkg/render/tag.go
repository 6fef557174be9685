package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/tag"
	"github.com/go-drift/spark/pkg/graphics"
)

// TagView draws a tag.
type TagView struct {
	base
	text   string
	icon   string
	colors tag.Colors
	sizes  tag.Sizes
}

// NewTagView binds to vm.
func NewTagView(vm *tag.ViewModel, background graphics.Color) *TagView {
	v := &TagView{base: newBase(background)}
	bind(&v.base, vm.Text(), &v.text)
	bind(&v.base, vm.Icon(), &v.icon)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Sizes(), &v.sizes)
	return v
}

// View renders the tag.
func (v *TagView) View() string {
	return v.render(v.draw)
}

func (v *TagView) draw() string {
	label := v.text
	if v.icon != "" {
		label = v.icon + " " + label
	}
	style := lipgloss.NewStyle().
		Foreground(v.color(v.colors.Foreground)).
		Padding(0, max(1, Cells(v.sizes.Padding)))
	if v.colors.Background.Alpha() > 0 {
		style = style.Background(v.color(v.colors.Background))
	}
	if border, ok := Border(v.sizes.BorderWidth, v.sizes.CornerRadius); ok {
		style = style.Border(border).BorderForeground(v.color(v.colors.Border))
	}
	return style.Render(label)
}

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/button"
	"github.com/go-drift/spark/pkg/graphics"
)

// ButtonView draws a button.
type ButtonView struct {
	base
	colors    button.CurrentColors
	spacings  button.Spacings
	border    button.Border
	height    float64
	title     string
	icon      string
	alignment button.Alignment
	opacity   float64
}

// NewButtonView binds to vm.
func NewButtonView(vm *button.ViewModel, background graphics.Color) *ButtonView {
	v := &ButtonView{base: newBase(background)}
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Spacings(), &v.spacings)
	bind(&v.base, vm.Border(), &v.border)
	bind(&v.base, vm.Height(), &v.height)
	bind(&v.base, vm.Title(), &v.title)
	bind(&v.base, vm.Icon(), &v.icon)
	bind(&v.base, vm.Alignment(), &v.alignment)
	bind(&v.base, vm.Opacity(), &v.opacity)
	return v
}

// View renders the button.
func (v *ButtonView) View() string {
	return v.render(v.draw)
}

func (v *ButtonView) draw() string {
	parts := []string{v.title}
	if v.icon != "" {
		gap := strings.Repeat(" ", max(1, Cells(v.spacings.IconTitle)))
		if v.alignment == button.IconTrailing {
			parts = []string{v.title, gap, v.icon}
		} else {
			parts = []string{v.icon, gap, v.title}
		}
	}
	label := strings.Join(parts, "")

	style := lipgloss.NewStyle().
		Foreground(v.faded(v.colors.Foreground, v.opacity)).
		Padding(0, Cells(v.spacings.Horizontal)).
		Bold(true)
	if v.colors.Background.Alpha() > 0 {
		style = style.Background(v.faded(v.colors.Background, v.opacity))
	}
	if v.height >= 56 {
		style = style.PaddingTop(1).PaddingBottom(1)
	}
	if border, ok := Border(v.border.Width, v.border.Radius); ok {
		style = style.Border(border).BorderForeground(v.faded(v.colors.Border, v.opacity))
	}
	return style.Render(label)
}

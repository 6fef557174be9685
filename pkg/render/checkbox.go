package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/checkbox"
	"github.com/go-drift/spark/pkg/graphics"
)

// CheckboxView draws a checkbox and its label on one line.
type CheckboxView struct {
	base
	selection checkbox.Selection
	text      string
	colors    checkbox.Colors
	opacity   float64
}

// NewCheckboxView binds to vm.
func NewCheckboxView(vm *checkbox.ViewModel, background graphics.Color) *CheckboxView {
	v := &CheckboxView{base: newBase(background)}
	bind(&v.base, vm.Selection(), &v.selection)
	bind(&v.base, vm.Text(), &v.text)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Opacity(), &v.opacity)
	return v
}

// View renders the checkbox.
func (v *CheckboxView) View() string {
	return v.render(v.draw)
}

func (v *CheckboxView) draw() string {
	frame := lipgloss.NewStyle().Foreground(v.faded(v.colors.Border, v.opacity))
	mark := lipgloss.NewStyle().Foreground(v.faded(v.colors.Icon, v.opacity))
	if v.colors.Tint.Alpha() > 0 {
		mark = mark.Background(v.faded(v.colors.Tint, v.opacity))
	}
	box := frame.Render("[") + mark.Render(v.selection.Glyph()) + frame.Render("]")
	if v.text == "" {
		return box
	}
	label := lipgloss.NewStyle().Foreground(v.faded(v.colors.Text, v.opacity)).Render(v.text)
	return box + " " + label
}

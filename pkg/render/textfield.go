package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/textfield"
	"github.com/go-drift/spark/pkg/graphics"
)

// TextFieldView draws a bordered text field with its helper line.
type TextFieldView struct {
	base
	width       int
	text        string
	placeholder string
	helper      string
	colors      textfield.Colors
	border      textfield.Border
	opacity     float64
}

// NewTextFieldView binds to vm. Width includes the border.
func NewTextFieldView(vm *textfield.ViewModel, width int, background graphics.Color) *TextFieldView {
	v := &TextFieldView{base: newBase(background), width: max(4, width)}
	bind(&v.base, vm.Text(), &v.text)
	bind(&v.base, vm.Placeholder(), &v.placeholder)
	bind(&v.base, vm.Helper(), &v.helper)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Border(), &v.border)
	bind(&v.base, vm.Opacity(), &v.opacity)
	return v
}

// View renders the text field.
func (v *TextFieldView) View() string {
	return v.render(v.draw)
}

func (v *TextFieldView) draw() string {
	content, fg := v.text, v.colors.Text
	if content == "" {
		content, fg = v.placeholder, v.colors.Placeholder
	}
	style := lipgloss.NewStyle().
		Width(v.width-2).
		MaxHeight(3).
		Foreground(v.faded(fg, v.opacity)).
		Padding(0, 1)
	if border, ok := Border(v.border.Width, v.border.Radius); ok {
		style = style.Border(border).BorderForeground(v.faded(v.border.Color, v.opacity))
	}
	field := style.Render(content)
	if v.helper == "" {
		return field
	}
	helper := lipgloss.NewStyle().Foreground(v.faded(v.colors.Helper, v.opacity)).PaddingLeft(1).Render(v.helper)
	return lipgloss.JoinVertical(lipgloss.Left, field, helper)
}

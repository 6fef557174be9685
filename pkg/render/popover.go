package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/go-drift/spark/pkg/components/popover"
	"github.com/go-drift/spark/pkg/graphics"
)

// PopoverView draws a popover bubble under an arrow. A dismissed popover
// renders as an empty string.
type PopoverView struct {
	base
	width     int
	text      string
	showArrow bool
	presented bool
	colors    popover.Colors
	spacings  popover.Spacings
}

// NewPopoverView binds to vm. Width bounds the bubble.
func NewPopoverView(vm *popover.ViewModel, width int, background graphics.Color) *PopoverView {
	v := &PopoverView{base: newBase(background), width: max(8, width)}
	bind(&v.base, vm.Text(), &v.text)
	bind(&v.base, vm.ShowArrow(), &v.showArrow)
	bind(&v.base, vm.Presented(), &v.presented)
	bind(&v.base, vm.Colors(), &v.colors)
	bind(&v.base, vm.Spacings(), &v.spacings)
	return v
}

// View renders the popover.
func (v *PopoverView) View() string {
	return v.render(v.draw)
}

func (v *PopoverView) draw() string {
	if !v.presented {
		return ""
	}
	pad := max(1, Cells(v.spacings.Horizontal))
	inner := max(1, v.width-2*pad)
	// Wrap on words, then hard-wrap words longer than a line.
	body := wrap.String(wordwrap.String(v.text, inner), inner)

	bubble := lipgloss.NewStyle().
		Foreground(v.color(v.colors.Foreground)).
		Background(v.color(v.colors.Background)).
		Padding(0, pad).
		Render(body)
	if !v.showArrow {
		return bubble
	}
	arrow := lipgloss.NewStyle().
		Foreground(v.color(v.colors.Background)).
		Render(strings.Repeat(" ", pad) + "▲")
	return lipgloss.JoinVertical(lipgloss.Left, arrow, bubble)
}

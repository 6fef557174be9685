package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

// styles are the chrome styles of the showcase, derived from the theme.
type styles struct {
	page     lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	section  lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	focus    lipgloss.Style
}

func newStyles(th *theme.Theme) styles {
	bg := th.Colors.Background
	fg := func(c theme.ColorToken) lipgloss.Color { return render.Color(c.Color, bg) }
	muted := render.Color(th.Colors.OnBackground.WithAlpha(th.Dims.Dim2), bg)
	return styles{
		page:     lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(fg(th.Colors.Main)),
		subtitle: lipgloss.NewStyle().Foreground(muted),
		section:  lipgloss.NewStyle().Bold(true).Foreground(render.Color(th.Colors.OnBackground, bg)).MarginTop(1),
		label:    lipgloss.NewStyle().Foreground(muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(fg(th.Colors.Accent)),
		focus:    lipgloss.NewStyle().Foreground(fg(th.Colors.Accent)),
	}
}

// sectionTitle renders a section header.
func (s styles) sectionTitle(text string) string {
	return s.section.Render(text)
}

// marker renders the focus indicator in front of a control.
func (s styles) marker(focused bool) string {
	if focused {
		return s.focus.Render("›") + " "
	}
	return "  "
}

// row joins rendered blocks side by side with a gap.
func row(blocks ...string) string {
	spaced := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
}

// column stacks rendered blocks.
func column(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// focusRing tracks which control of a page has keyboard focus.
type focusRing struct {
	index int
	count int
}

func (f *focusRing) next() {
	if f.count > 0 {
		f.index = (f.index + 1) % f.count
	}
}

func (f *focusRing) prev() {
	if f.count > 0 {
		f.index = (f.index + f.count - 1) % f.count
	}
}

func (f focusRing) is(i int) bool { return f.index == i }

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// controls is the bookkeeping shared by demo pages: the focus ring over
// their controls and the mouse zones that mark them.
type controls struct {
	env    *Env
	focus  focusRing
	prefix string
	subs   core.Subscriptions
}

func newControls(env *Env, count int) controls {
	return controls{env: env, focus: focusRing{count: count}, prefix: env.Zones.NewPrefix()}
}

// moveFocus handles the focus keys and reports whether msg was one.
func (c *controls) moveFocus(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.env.Keys.Next), key.Matches(msg, c.env.Keys.Down):
		c.focus.next()
	case key.Matches(msg, c.env.Keys.Prev), key.Matches(msg, c.env.Keys.Up):
		c.focus.prev()
	default:
		return false
	}
	return true
}

func (c *controls) zoneID(i int) string {
	return fmt.Sprintf("%s%d", c.prefix, i)
}

// mark wraps the rendered control i in its mouse zone.
func (c *controls) mark(i int, s string) string {
	return c.env.Zones.Mark(c.zoneID(i), s)
}

// hit returns the control under the mouse, or -1.
func (c *controls) hit(msg tea.MouseMsg) int {
	for i := range c.focus.count {
		if inZone(c.env.Zones, c.zoneID(i), msg) {
			return i
		}
	}
	return -1
}

// local returns the mouse position relative to control i.
func (c *controls) local(i int, msg tea.MouseMsg) (x, y int) {
	info := c.env.Zones.Get(c.zoneID(i))
	if info == nil {
		return -1, -1
	}
	return info.Pos(msg)
}

func isPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func isRelease(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease
}

func isDrag(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft
}

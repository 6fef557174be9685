package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/components/tag"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

var tagIntents = []theme.Intent{
	theme.IntentMain, theme.IntentSupport, theme.IntentAccent,
	theme.IntentSuccess, theme.IntentAlert, theme.IntentDanger,
	theme.IntentInfo, theme.IntentNeutral,
}

// tagRow is one variant shown in every intent.
type tagRow struct {
	variant tag.Variant
	shape   components.Shape
	icons   bool
	tags    []*tag.ViewModel
	views   []*render.TagView
}

type tagsPage struct {
	controls
	styles styles
	rows   []*tagRow
}

func newTagsPage(env *Env) Page {
	th := env.Theme
	p := &tagsPage{styles: newStyles(th)}
	for _, variant := range []tag.Variant{tag.VariantFilled, tag.VariantOutlined, tag.VariantTinted} {
		r := &tagRow{variant: variant, shape: components.ShapePill}
		for _, intent := range tagIntents {
			vm := tag.NewViewModel(th, intent, variant, intent.String())
			r.tags = append(r.tags, vm)
			r.views = append(r.views, render.NewTagView(vm, th.Colors.Background))
		}
		p.rows = append(p.rows, r)
	}
	p.controls = newControls(env, len(p.rows))
	return p
}

func (r *tagRow) cycleShape() {
	r.shape = (r.shape + 1) % (components.ShapePill + 1)
	for _, vm := range r.tags {
		vm.SetShape(r.shape)
	}
}

func (r *tagRow) toggleIcons() {
	r.icons = !r.icons
	icon := ""
	if r.icons {
		icon = "●"
	}
	for _, vm := range r.tags {
		vm.SetIcon(icon)
	}
}

func (p *tagsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		r := p.rows[p.focus.index]
		switch {
		case key.Matches(msg, p.env.Keys.Toggle):
			r.cycleShape()
		case key.Matches(msg, p.env.Keys.Activate):
			r.toggleIcons()
		}
	case tea.MouseMsg:
		if isRelease(msg) {
			if i := p.hit(msg); i >= 0 {
				p.focus.index = i
				p.rows[i].cycleShape()
			}
		}
	}
	return nil
}

func (p *tagsPage) View(width int) string {
	lines := []string{p.styles.label.Render("space changes the shape, enter toggles icons")}
	for i, r := range p.rows {
		lines = append(lines, p.styles.sectionTitle(r.variant.String()+" · "+r.shape.String()))
		var blocks []string
		line := ""
		for _, v := range r.views {
			s := v.View()
			switch {
			case line == "":
				line = s
			case lipgloss.Width(line)+2+lipgloss.Width(s) > width-2:
				blocks = append(blocks, line)
				line = s
			default:
				line = row(line, s)
			}
		}
		blocks = append(blocks, line)
		lines = append(lines, p.styles.marker(p.focus.is(i))+p.mark(i, column(blocks...)))
	}
	return column(lines...)
}

func (p *tagsPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for _, r := range p.rows {
		for i, vm := range r.tags {
			vm.SetTheme(th)
			r.views[i].SetBackground(th.Colors.Background)
		}
	}
}

func (p *tagsPage) Close() {
	for _, r := range p.rows {
		for _, v := range r.views {
			v.Close()
		}
	}
}

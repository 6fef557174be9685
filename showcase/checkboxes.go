package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/components/checkbox"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

type checkboxesPage struct {
	controls
	styles styles
	// parent mirrors its children: selected when all are, indeterminate
	// when some are.
	parent   *checkbox.ViewModel
	children []*checkbox.ViewModel
	views    []*render.CheckboxView
}

func newCheckboxesPage(env *Env) Page {
	th := env.Theme
	p := &checkboxesPage{styles: newStyles(th)}
	p.parent = checkbox.NewViewModel(th, theme.IntentMain, "All notifications", checkbox.Indeterminate)
	for _, spec := range []struct {
		text      string
		intent    theme.Intent
		selection checkbox.Selection
	}{
		{"Mentions", theme.IntentMain, checkbox.Selected},
		{"Direct messages", theme.IntentSuccess, checkbox.Unselected},
		{"Weekly digest", theme.IntentAccent, checkbox.Unselected},
		{"Security alerts", theme.IntentDanger, checkbox.Selected},
	} {
		p.children = append(p.children, checkbox.NewViewModel(th, spec.intent, spec.text, spec.selection))
	}
	p.controls = newControls(env, len(p.children)+1)

	for _, vm := range p.all() {
		p.views = append(p.views, render.NewCheckboxView(vm, th.Colors.Background))
	}
	for _, vm := range p.children {
		p.subs.Add(vm.Selection().AddListener(func(checkbox.Selection) { p.syncParent() }))
	}
	p.syncParent()
	return p
}

func (p *checkboxesPage) all() []*checkbox.ViewModel {
	return append([]*checkbox.ViewModel{p.parent}, p.children...)
}

func (p *checkboxesPage) syncParent() {
	selected := 0
	for _, vm := range p.children {
		if vm.Selection().Value() == checkbox.Selected {
			selected++
		}
	}
	switch selected {
	case 0:
		p.parent.SetSelection(checkbox.Unselected)
	case len(p.children):
		p.parent.SetSelection(checkbox.Selected)
	default:
		p.parent.SetSelection(checkbox.Indeterminate)
	}
}

// toggle flips control i. Toggling the parent sets every enabled child.
func (p *checkboxesPage) toggle(i int) {
	if i > 0 {
		p.children[i-1].Toggle()
		return
	}
	next := p.parent.Selection().Value().Toggled()
	for _, vm := range p.children {
		if vm.Status().IsEnabled {
			vm.SetSelection(next)
		}
	}
}

func (p *checkboxesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		vm := p.all()[p.focus.index]
		switch {
		case key.Matches(msg, p.env.Keys.Toggle), key.Matches(msg, p.env.Keys.Activate):
			if vm.Status().IsEnabled {
				p.toggle(p.focus.index)
			}
		case key.Matches(msg, p.env.Keys.Disable):
			vm.SetEnabled(!vm.Status().IsEnabled)
		}
	case tea.MouseMsg:
		i := p.hit(msg)
		switch {
		case isPress(msg) && i >= 0:
			p.focus.index = i
			p.all()[i].SetPressed(true)
		case isRelease(msg):
			for j, vm := range p.all() {
				if vm.Status().IsHighlighted {
					vm.SetPressed(false)
					if j == i && vm.Status().IsEnabled {
						p.toggle(j)
					}
				}
			}
		}
	}
	return nil
}

func (p *checkboxesPage) View(int) string {
	lines := []string{p.styles.sectionTitle("Tri-state group")}
	for i, v := range p.views {
		line := p.styles.marker(p.focus.is(i)) + p.mark(i, v.View())
		if i > 0 {
			line = "    " + line
		}
		lines = append(lines, line)
	}
	return column(lines...)
}

func (p *checkboxesPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for i, vm := range p.all() {
		vm.SetTheme(th)
		p.views[i].SetBackground(th.Colors.Background)
	}
}

func (p *checkboxesPage) Close() {
	p.subs.Dispose()
	for _, v := range p.views {
		v.Close()
	}
}

package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/components/popover"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

const popoverWidth = 32

type popoverEntry struct {
	anchor string
	vm     *popover.ViewModel
	view   *render.PopoverView
}

type popoversPage struct {
	controls
	styles  styles
	entries []*popoverEntry
}

func newPopoversPage(env *Env) Page {
	th := env.Theme
	p := &popoversPage{styles: newStyles(th)}
	for _, spec := range []struct {
		anchor string
		intent theme.Intent
		text   string
	}{
		{"What's new", theme.IntentSurface, "Popovers wrap their text to the available width and point at the control that opened them."},
		{"Tip", theme.IntentInfo, "Press space to hide the arrow."},
		{"Warning", theme.IntentAlert, "Unsaved changes will be lost when you leave this page."},
	} {
		vm := popover.NewViewModel(th, spec.intent, spec.text)
		p.entries = append(p.entries, &popoverEntry{
			anchor: spec.anchor,
			vm:     vm,
			view:   render.NewPopoverView(vm, popoverWidth, th.Colors.Background),
		})
	}
	p.controls = newControls(env, len(p.entries))
	p.entries[0].vm.Present()
	return p
}

func (p *popoversPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		vm := p.entries[p.focus.index].vm
		switch {
		case key.Matches(msg, p.env.Keys.Activate):
			vm.TogglePresented()
		case key.Matches(msg, p.env.Keys.Toggle):
			vm.SetShowArrow(!vm.ShowArrow().Value())
		}
	case tea.MouseMsg:
		if isRelease(msg) {
			if i := p.hit(msg); i >= 0 {
				p.focus.index = i
				p.entries[i].vm.TogglePresented()
			}
		}
	}
	return nil
}

func (p *popoversPage) View(int) string {
	anchor := p.styles.selected.Padding(0, 1).Border(lipgloss.NormalBorder())
	lines := []string{p.styles.label.Render("enter opens or closes, space toggles the arrow")}
	for i, e := range p.entries {
		lines = append(lines, p.styles.marker(p.focus.is(i))+p.mark(i, anchor.Render(e.anchor)))
		if bubble := e.view.View(); bubble != "" {
			lines = append(lines, indent(bubble, 2))
		}
	}
	return column(lines...)
}

func (p *popoversPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for _, e := range p.entries {
		e.vm.SetTheme(th)
		e.view.SetBackground(th.Colors.Background)
	}
}

func (p *popoversPage) Close() {
	for _, e := range p.entries {
		e.view.Close()
	}
}

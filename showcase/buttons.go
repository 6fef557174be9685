package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/components/button"
	"github.com/go-drift/spark/pkg/control"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

type buttonsPage struct {
	controls
	styles  styles
	buttons []*button.ViewModel
	views   []*render.ButtonView
	labels  []string
	// releasing is the button pressed from the keyboard, released and
	// tapped on the next frame so the pressed colors show.
	releasing int
	pressed   int
	taps      int
	last      string
}

func newButtonsPage(env *Env) Page {
	th := env.Theme
	specs := []struct {
		label string
		cfg   button.Config
	}{
		{"filled", button.Config{Variant: button.VariantFilled, Intent: theme.IntentMain, Title: "Save", Icon: "✓", Size: components.SizeMedium}},
		{"outlined", button.Config{Variant: button.VariantOutlined, Intent: theme.IntentSupport, Title: "Share", Shape: components.ShapeRounded, Size: components.SizeMedium}},
		{"tinted", button.Config{Variant: button.VariantTinted, Intent: theme.IntentAccent, Title: "Next", Icon: "→", Alignment: button.IconTrailing, Shape: components.ShapePill, Size: components.SizeMedium}},
		{"ghost", button.Config{Variant: button.VariantGhost, Intent: theme.IntentBasic, Title: "Cancel", Size: components.SizeSmall}},
		{"contrast", button.Config{Variant: button.VariantContrast, Intent: theme.IntentDanger, Title: "Delete", Size: components.SizeLarge}},
		{"toggle", button.Config{Variant: button.VariantOutlined, Intent: theme.IntentMain, Title: "Follow", Icon: "+", Shape: components.ShapePill, Size: components.SizeMedium}},
	}

	p := &buttonsPage{
		controls:  newControls(env, len(specs)),
		styles:    newStyles(th),
		releasing: -1,
		pressed:   -1,
	}
	for _, spec := range specs {
		cfg := spec.cfg
		cfg.Theme = th
		vm := button.NewViewModel(cfg)
		title := cfg.Title
		p.subs.Add(vm.Tapped().AddListener(func() {
			p.taps++
			p.last = title
		}))
		p.buttons = append(p.buttons, vm)
		p.views = append(p.views, render.NewButtonView(vm, th.Colors.Background))
		p.labels = append(p.labels, spec.label)
	}

	// The toggle button changes its title and icon once selected.
	follow := p.buttons[len(p.buttons)-1]
	follow.SetTitle("Following", control.StateSelected)
	follow.SetIcon("✓", control.StateSelected)
	follow.SetTitle("Unavailable", control.StateDisabled)
	return p
}

func (p *buttonsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if i := p.releasing; i >= 0 {
			p.releasing = -1
			p.buttons[i].SetPressed(false)
			p.buttons[i].Tap()
		}
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		vm := p.buttons[p.focus.index]
		switch {
		case key.Matches(msg, p.env.Keys.Activate):
			if vm.Status().IsEnabled {
				vm.SetPressed(true)
				p.releasing = p.focus.index
			}
		case key.Matches(msg, p.env.Keys.Toggle):
			vm.SetSelected(!vm.Status().IsSelected)
		case key.Matches(msg, p.env.Keys.Disable):
			vm.SetEnabled(!vm.Status().IsEnabled)
		}
	case tea.MouseMsg:
		p.handleMouse(msg)
	}
	return nil
}

func (p *buttonsPage) handleMouse(msg tea.MouseMsg) {
	switch {
	case isPress(msg):
		if i := p.hit(msg); i >= 0 {
			p.focus.index = i
			p.pressed = i
			p.buttons[i].SetPressed(true)
		}
	case isRelease(msg):
		if p.pressed < 0 {
			return
		}
		vm := p.buttons[p.pressed]
		vm.SetPressed(false)
		if p.hit(msg) == p.pressed {
			vm.Tap()
			if p.pressed == len(p.buttons)-1 {
				vm.SetSelected(!vm.Status().IsSelected)
			}
		}
		p.pressed = -1
	}
}

func (p *buttonsPage) View(int) string {
	lines := []string{p.styles.sectionTitle("Variants")}
	for i, v := range p.views {
		if i == len(p.views)-1 {
			lines = append(lines, p.styles.sectionTitle("Per-state title"))
		}
		lines = append(lines, row(
			p.styles.marker(p.focus.is(i)),
			p.mark(i, v.View()),
			p.styles.label.Render(p.labels[i]),
		))
	}
	status := fmt.Sprintf("%s tapped", plural(p.taps, "button"))
	if p.last != "" {
		status += ", last: " + p.last
	}
	lines = append(lines, "", p.styles.label.Render(status))
	return column(lines...)
}

func (p *buttonsPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for i, vm := range p.buttons {
		vm.SetTheme(th)
		p.views[i].SetBackground(th.Colors.Background)
	}
}

func (p *buttonsPage) Close() {
	p.subs.Dispose()
	for _, v := range p.views {
		v.Close()
	}
}

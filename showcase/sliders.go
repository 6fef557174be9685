package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/animation"
	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/components/slider"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

const maxSliderWidth = 40

type sliderEntry struct {
	label  string
	format string
	vm     *slider.ViewModel
	view   *render.SliderView
	spring *animation.Spring
}

type slidersPage struct {
	controls
	styles   styles
	entries  []*sliderEntry
	dragging int
}

func newSlidersPage(env *Env) Page {
	th := env.Theme
	p := &slidersPage{styles: newStyles(th), dragging: -1}
	for _, spec := range []struct {
		label  string
		format string
		cfg    slider.Config
	}{
		{"Volume", "%.0f%%", slider.Config{Intent: theme.IntentMain, Bounds: slider.Bounds{Min: 0, Max: 100}, Step: 10, Value: 40}},
		{"Temperature", "%.1f°", slider.Config{Intent: theme.IntentAlert, Shape: components.ShapePill, Bounds: slider.Bounds{Min: 16, Max: 28}, Step: 0.5, Value: 21}},
		{"Opacity", "%.2f", slider.Config{Intent: theme.IntentAccent, Bounds: slider.Bounds{Min: 0, Max: 1}, Value: 0.75}},
	} {
		cfg := spec.cfg
		cfg.Theme = th
		vm := slider.NewViewModel(cfg)
		e := &sliderEntry{
			label:  spec.label,
			format: spec.format,
			vm:     vm,
			view:   render.NewSliderView(vm, maxSliderWidth, th.Colors.Background),
			spring: animation.NewSpring(env.FPS, 8, 0.9),
		}
		e.spring.Jump(vm.Fraction().Value())
		p.entries = append(p.entries, e)
	}
	p.controls = newControls(env, len(p.entries))
	return p
}

func (p *slidersPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		for _, e := range p.entries {
			target := e.vm.Fraction().Value()
			if e.spring.Settled(target, 0.001) {
				e.spring.Jump(target)
			}
			e.view.SetThumb(e.spring.Step(target))
		}
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		vm := p.entries[p.focus.index].vm
		switch {
		case key.Matches(msg, p.env.Keys.Left):
			vm.Increment(-1)
		case key.Matches(msg, p.env.Keys.Right):
			vm.Increment(1)
		case key.Matches(msg, p.env.Keys.Disable):
			vm.SetEnabled(!vm.Status().IsEnabled)
		}
	case tea.MouseMsg:
		p.handleMouse(msg)
	}
	return nil
}

func (p *slidersPage) handleMouse(msg tea.MouseMsg) {
	switch {
	case isPress(msg):
		i := p.hit(msg)
		if i < 0 {
			return
		}
		p.focus.index = i
		p.dragging = i
		p.entries[i].vm.BeginDrag()
		p.moveTo(i, msg)
	case isDrag(msg) && p.dragging >= 0:
		p.moveTo(p.dragging, msg)
	case isRelease(msg) && p.dragging >= 0:
		p.entries[p.dragging].vm.EndDrag()
		p.dragging = -1
	}
}

func (p *slidersPage) moveTo(i int, msg tea.MouseMsg) {
	x, _ := p.local(i, msg)
	if x < 0 {
		return
	}
	e := p.entries[i]
	e.vm.DidMove(float64(x), float64(e.view.Width()-1))
}

func (p *slidersPage) View(width int) string {
	trackWidth := max(8, min(maxSliderWidth, width-24))
	lines := []string{p.styles.sectionTitle("Stepped and continuous")}
	for i, e := range p.entries {
		if e.view.Width() != trackWidth {
			e.view.SetWidth(trackWidth)
		}
		value := fmt.Sprintf(e.format, e.vm.Value().Value())
		lines = append(lines, row(
			p.styles.marker(p.focus.is(i))+p.styles.label.Render(fmt.Sprintf("%-12s", e.label)),
			p.mark(i, e.view.View()),
			value,
		))
	}
	return column(lines...)
}

func (p *slidersPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for _, e := range p.entries {
		e.vm.SetTheme(th)
		e.view.SetBackground(th.Colors.Background)
	}
}

func (p *slidersPage) Close() {
	p.subs.Dispose()
	for _, e := range p.entries {
		e.view.Close()
	}
}

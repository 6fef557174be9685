package showcase

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/components/rating"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

type ratingEntry struct {
	label    string
	editable bool
	vm       *rating.ViewModel
	view     *render.RatingView
}

type ratingsPage struct {
	controls
	styles   styles
	entries  []*ratingEntry
	pressing int
}

func newRatingsPage(env *Env) Page {
	th := env.Theme
	p := &ratingsPage{styles: newStyles(th), pressing: -1}
	for _, spec := range []struct {
		label string
		cfg   rating.Config
	}{
		{"Your rating", rating.Config{Intent: theme.IntentMain, Size: components.SizeLarge, Value: 3, Editable: true}},
		{"Average", rating.Config{Intent: theme.IntentAlert, Value: 3.6}},
		{"Ten point", rating.Config{Intent: theme.IntentAccent, Size: components.SizeSmall, Count: 10, Value: 7, Editable: true}},
	} {
		cfg := spec.cfg
		cfg.Theme = th
		vm := rating.NewViewModel(cfg)
		p.entries = append(p.entries, &ratingEntry{
			label:    spec.label,
			editable: cfg.Editable,
			vm:       vm,
			view:     render.NewRatingView(vm, th.Colors.Background),
		})
	}
	p.controls = newControls(env, len(p.entries))
	return p
}

func (p *ratingsPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		e := p.entries[p.focus.index]
		value := math.Round(e.vm.Value().Value())
		switch {
		case key.Matches(msg, p.env.Keys.Left):
			if value <= 1 {
				p.clear(e)
			} else {
				e.vm.Tap(int(value) - 2)
			}
		case key.Matches(msg, p.env.Keys.Right):
			e.vm.Tap(int(value))
		case key.Matches(msg, p.env.Keys.Toggle):
			e.editable = !e.editable
			e.vm.SetEditable(e.editable)
		case key.Matches(msg, p.env.Keys.Disable):
			e.vm.SetEnabled(!e.vm.Status().IsEnabled)
		}
	case tea.MouseMsg:
		p.handleMouse(msg)
	}
	return nil
}

// clear resets an interactive rating to no stars.
func (p *ratingsPage) clear(e *ratingEntry) {
	if e.editable && e.vm.Status().IsEnabled {
		e.vm.SetValue(0)
	}
}

// star returns the star under the mouse on rating i. Stars are one glyph
// followed by a space.
func (p *ratingsPage) star(i int, msg tea.MouseMsg) int {
	x, _ := p.local(i, msg)
	if x < 0 {
		return -1
	}
	return x / 2
}

func (p *ratingsPage) handleMouse(msg tea.MouseMsg) {
	switch {
	case isPress(msg), isDrag(msg) && p.pressing >= 0:
		i := p.pressing
		if i < 0 {
			i = p.hit(msg)
		}
		if i < 0 {
			return
		}
		p.focus.index = i
		p.pressing = i
		p.entries[i].vm.Press(p.star(i, msg))
	case isRelease(msg) && p.pressing >= 0:
		e := p.entries[p.pressing]
		if star := p.star(p.pressing, msg); p.hit(msg) == p.pressing && star >= 0 {
			e.vm.Tap(star)
		} else {
			e.vm.Release()
		}
		p.pressing = -1
	}
}

func (p *ratingsPage) View(int) string {
	lines := []string{p.styles.sectionTitle("Ratings")}
	for i, e := range p.entries {
		mode := "read-only"
		if e.editable {
			mode = "editable"
		}
		lines = append(lines, row(
			p.styles.marker(p.focus.is(i))+p.styles.label.Render(fmt.Sprintf("%-12s", e.label)),
			p.mark(i, e.view.View()),
			fmt.Sprintf("%.1f / %d", e.vm.Value().Value(), e.vm.Count()),
			p.styles.label.Render(mode),
		))
	}
	return column(lines...)
}

func (p *ratingsPage) SetTheme(th *theme.Theme) {
	p.styles = newStyles(th)
	for _, e := range p.entries {
		e.vm.SetTheme(th)
		e.view.SetBackground(th.Colors.Background)
	}
}

func (p *ratingsPage) Close() {
	p.subs.Dispose()
	for _, e := range p.entries {
		e.view.Close()
	}
}

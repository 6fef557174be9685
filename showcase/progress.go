package showcase

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/components/progressbar"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

const maxBarWidth = 48

var progressIntents = []theme.Intent{
	theme.IntentMain, theme.IntentSupport, theme.IntentAccent,
	theme.IntentSuccess, theme.IntentAlert, theme.IntentDanger, theme.IntentInfo,
}

type progressPage struct {
	controls
	styles      styles
	intent      int
	bar         *progressbar.ViewModel
	barView     *render.ProgressBarView
	loader      *progressbar.IndeterminateViewModel
	loaderView  *render.IndeterminateBarView
	animator    *progressbar.Animator
	loaderWidth int
	transitions int
}

func newProgressPage(env *Env) Page {
	th := env.Theme
	p := &progressPage{
		controls: newControls(env, 2),
		styles:   newStyles(th),
	}
	p.bar = progressbar.NewViewModel(th, theme.IntentMain, components.ShapePill, 0.35)
	p.barView = render.NewProgressBarView(p.bar, maxBarWidth, th.Colors.Background)

	p.loader = progressbar.NewIndeterminateViewModel(progressbar.IndeterminateConfig{
		Theme:       th,
		Intent:      theme.IntentMain,
		Shape:       components.ShapePill,
		IsAnimating: true,
		Logger:      env.Logger,
	})
	p.loaderView = render.NewIndeterminateBarView(p.loader, maxBarWidth, th.Colors.Background)
	p.animator = progressbar.NewAnimator(p.loader, env.Scheduler, env.StepInterval)
	p.subs.Add(p.loader.Phase().AddListener(func(progressbar.AnimationPhase) { p.transitions++ }))
	return p
}

func (p *progressPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.moveFocus(msg) {
			return nil
		}
		switch {
		case key.Matches(msg, p.env.Keys.Left) && p.focus.is(0):
			p.bar.SetValue(p.bar.Value().Value() - 0.1)
		case key.Matches(msg, p.env.Keys.Right) && p.focus.is(0):
			p.bar.SetValue(p.bar.Value().Value() + 0.1)
		case key.Matches(msg, p.env.Keys.Toggle):
			p.loader.SetIsAnimating(!p.loader.IsAnimating())
		case key.Matches(msg, p.env.Keys.Activate):
			p.cycleIntent()
		}
	case tea.MouseMsg:
		if !isRelease(msg) {
			return nil
		}
		switch p.hit(msg) {
		case 0:
			x, _ := p.local(0, msg)
			p.focus.index = 0
			p.bar.SetValue(float64(x+1) / float64(max(1, p.loaderWidth)))
		case 1:
			p.focus.index = 1
			p.loader.SetIsAnimating(!p.loader.IsAnimating())
		}
	}
	return nil
}

func (p *progressPage) cycleIntent() {
	p.intent = (p.intent + 1) % len(progressIntents)
	intent := progressIntents[p.intent]
	p.bar.SetIntent(intent)
	p.loader.SetIntent(intent)
}

func (p *progressPage) View(width int) string {
	w := max(8, min(maxBarWidth, width-4))
	if w != p.loaderWidth {
		p.loaderWidth = w
		p.barView = p.resized(w)
		p.loaderView.SetWidth(w)
	}
	state := "stopped"
	if p.loader.IsAnimating() {
		state = fmt.Sprintf("%s, %d phase changes", p.loader.Phase().Value(), p.transitions)
	}
	return column(
		p.styles.sectionTitle("Determinate"),
		p.styles.marker(p.focus.is(0))+p.mark(0, p.barView.View()),
		p.styles.label.Render(fmt.Sprintf("  %.0f%%  ←/→ to change", 100*p.bar.Value().Value())),
		p.styles.sectionTitle("Indeterminate"),
		p.styles.marker(p.focus.is(1))+p.mark(1, p.loaderView.View()),
		p.styles.label.Render("  "+state+"  space to start or stop"),
		"",
		p.styles.label.Render("intent: "+progressIntents[p.intent].String()+"  enter to change"),
	)
}

// resized rebinds the determinate bar at a new width.
func (p *progressPage) resized(width int) *render.ProgressBarView {
	p.barView.Close()
	return render.NewProgressBarView(p.bar, width, p.env.Theme.Colors.Background)
}

func (p *progressPage) SetTheme(th *theme.Theme) {
	p.env.Theme = th
	p.styles = newStyles(th)
	p.bar.SetTheme(th)
	p.loader.SetTheme(th)
	p.barView.SetBackground(th.Colors.Background)
	p.loaderView.SetBackground(th.Colors.Background)
}

func (p *progressPage) Close() {
	p.animator.Close()
	p.subs.Dispose()
	p.barView.Close()
	p.loaderView.Close()
}

package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/render"
	"github.com/go-drift/spark/pkg/theme"
)

// themingPage shows the tokens of the active theme. Enter switches to the
// theme file it would export to.
type themingPage struct {
	env      *Env
	th       *theme.Theme
	styles   styles
	exported bool
	source   viewport.Model
}

func newThemingPage(env *Env) Page {
	p := &themingPage{env: env, th: env.Theme, styles: newStyles(env.Theme)}
	p.source = viewport.New(60, 16)
	p.refreshSource()
	return p
}

func (p *themingPage) refreshSource() {
	data, err := theme.Export(p.th)
	if err != nil {
		p.env.Logger.Warn("export theme", "err", err)
		p.source.SetContent(err.Error())
		return
	}
	p.source.SetContent(string(data))
}

func (p *themingPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.env.Keys.Activate) {
			p.exported = !p.exported
			return nil
		}
		if p.exported {
			var cmd tea.Cmd
			p.source, cmd = p.source.Update(msg)
			return cmd
		}
	case tea.MouseMsg:
		if p.exported {
			var cmd tea.Cmd
			p.source, cmd = p.source.Update(msg)
			return cmd
		}
	}
	return nil
}

func (p *themingPage) swatch(c graphics.Color) string {
	bg := p.th.Colors.Background
	return lipgloss.NewStyle().Background(render.Color(c, bg)).Render("    ")
}

func (p *themingPage) View(width int) string {
	if p.exported {
		p.source.Width = max(20, width)
		return column(
			p.styles.label.Render(p.th.Name+".yaml  enter returns to the palette"),
			p.source.View(),
		)
	}

	colors := p.th.Colors
	header := p.styles.label.Render(fmt.Sprintf("%-10s %-4s %-4s %-4s %-4s %-4s", "", "base", "on", "cont", "oncn", "var"))
	lines := []string{p.styles.sectionTitle("Intents"), header}
	for _, intent := range theme.Intents {
		t := colors.Token(intent)
		lines = append(lines, strings.Join([]string{
			p.styles.label.Render(fmt.Sprintf("%-10s", intent)),
			p.swatch(t.Color), p.swatch(t.OnColor), p.swatch(t.Container),
			p.swatch(t.OnContainer), p.swatch(t.Variant),
		}, " "))
	}

	lines = append(lines, p.styles.sectionTitle("Surfaces"))
	for _, s := range []struct {
		name  string
		color graphics.Color
	}{
		{"background", colors.Background},
		{"surface", colors.Surface},
		{"inverse", colors.SurfaceInverse},
		{"outline", colors.Outline},
	} {
		lines = append(lines, p.styles.label.Render(fmt.Sprintf("%-10s", s.name))+" "+p.swatch(s.color)+" "+s.color.Hex())
	}

	r, d := p.th.Radii, p.th.Dims
	lines = append(lines,
		p.styles.sectionTitle("Radii and dims"),
		fmt.Sprintf("radii  small %g  medium %g  large %g  full %g", r.Small, r.Medium, r.Large, r.Full),
		fmt.Sprintf("dims   %g  %g  %g  %g  %g", d.Dim1, d.Dim2, d.Dim3, d.Dim4, d.Dim5),
		"",
		p.styles.label.Render("enter shows the exported theme file"),
	)
	return column(lines...)
}

func (p *themingPage) SetTheme(th *theme.Theme) {
	p.th = th
	p.styles = newStyles(th)
	p.refreshSource()
}

func (p *themingPage) Close() {}

// Package showcase is an interactive terminal catalog of every spark
// component, built on bubbletea.
package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sahilm/fuzzy"

	"github.com/go-drift/spark/pkg/animation"
	"github.com/go-drift/spark/pkg/components/progressbar"
	"github.com/go-drift/spark/pkg/core"
	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
	"github.com/go-drift/spark/pkg/theme"
)

// DefaultFrameInterval is the redraw period of running animations.
const DefaultFrameInterval = 33 * time.Millisecond

// Options configures the showcase.
type Options struct {
	// Theme is the initial theme. Nil picks the default for Dark.
	Theme *theme.Theme
	Dark  bool

	// Watcher, when set, replaces the theme whenever its file changes.
	Watcher *theme.Watcher

	// FrameInterval defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	// StepInterval is the indeterminate progress step, defaulting to
	// progressbar.StepInterval.
	StepInterval time.Duration

	Logger *slog.Logger
}

type frameMsg time.Time

// dispatchMsg runs a function on the UI loop.
type dispatchMsg func()

// Model is the root bubbletea model of the showcase.
type Model struct {
	opts      Options
	th        *theme.Theme
	styles    styles
	keys      keyMap
	help      help.Model
	filter    textinput.Model
	filtering bool
	visible   []int
	cursor    int
	notice    string
	page      Page
	pageDemo  Demo
	scheduler *animation.FrameScheduler
	zones     *zone.Manager
	subs      core.Subscriptions
	logger    *slog.Logger
	width     int
	height    int
	quitting  bool
}

// New creates the showcase model.
func New(opts Options) *Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.StepInterval <= 0 {
		opts.StepInterval = progressbar.StepInterval
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default(brightness(opts.Dark))
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter demos"
	filter.CharLimit = 32

	m := &Model{
		opts:      opts,
		th:        th,
		styles:    newStyles(th),
		keys:      defaultKeyMap(),
		help:      help.New(),
		filter:    filter,
		scheduler: animation.NewFrameScheduler(),
		zones:     zone.New(),
		logger:    opts.Logger.With("component", "showcase"),
		width:     80,
		height:    24,
	}
	m.applyFilter()
	if opts.Watcher != nil {
		m.subs.Add(opts.Watcher.Theme().AddListener(m.setTheme))
	}
	return m
}

func brightness(dark bool) theme.Brightness {
	if dark {
		return theme.BrightnessDark
	}
	return theme.BrightnessLight
}

func (m *Model) Init() tea.Cmd {
	return frameCmd(m.opts.FrameInterval)
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Theme returns the active theme.
func (m *Model) Theme() *theme.Theme { return m.th }

// Page returns the open page, or nil on the demo list.
func (m *Model) Page() Page { return m.page }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.scheduler.Step()
		var cmd tea.Cmd
		if m.page != nil {
			cmd = m.page.Update(msg)
		}
		return m, tea.Batch(cmd, frameCmd(m.opts.FrameInterval))

	case dispatchMsg:
		msg()
		return m, nil

	case tea.MouseMsg:
		if m.page != nil {
			return m, m.page.Update(msg)
		}
		return m, m.handleListMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m, m.handleFilterKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c, ok := m.page.(textCapturer); ok && c.CapturesText() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			m.closePage()
			return tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.closePage()
			return nil
		}
		return m.page.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.closePage()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(theme.Default(brightness(m.th.Brightness != theme.BrightnessDark)))
		return nil
	}

	if m.page != nil {
		if key.Matches(msg, m.keys.Back) {
			m.closePage()
			return nil
		}
		return m.page.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		m.openSelected()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m.filter.Focus()
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.openSelected()
		return nil
	case tea.KeyUp, tea.KeyDown:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *Model) handleListMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for i, idx := range m.visible {
		if inZone(m.zones, demoZone(idx), msg) {
			m.cursor = i
			m.openSelected()
			return nil
		}
	}
	return nil
}

// applyFilter recomputes the visible demos from the filter query.
func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	if query == "" {
		for i := range demos {
			m.visible = append(m.visible, i)
		}
	} else {
		for _, match := range fuzzy.FindFrom(query, demoSource(demos)) {
			m.visible = append(m.visible, match.Index)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m *Model) openSelected() {
	if len(m.visible) == 0 {
		return
	}
	m.open(demos[m.visible[m.cursor]])
}

func (m *Model) open(demo Demo) {
	m.closePage()
	m.notice = ""
	defer errors.RecoverWithCallback("showcase.open", func(r any) {
		m.page = nil
		m.notice = fmt.Sprintf("%s failed to open: %v", demo.Title, r)
	})
	env := &Env{
		Theme:        m.th,
		Keys:         m.keys,
		Scheduler:    m.scheduler,
		StepInterval: m.opts.StepInterval,
		FPS:          int(time.Second / m.opts.FrameInterval),
		Zones:        m.zones,
		Logger:       m.logger,
	}
	m.page = demo.Builder(env)
	m.pageDemo = demo
	m.logger.Debug("open demo", "route", demo.Route)
}

// OpenRoute opens the demo registered at route. It reports whether one
// was found.
func (m *Model) OpenRoute(route string) bool {
	for _, d := range demos {
		if d.Route == route {
			m.open(d)
			return true
		}
	}
	return false
}

func (m *Model) closePage() {
	if m.page != nil {
		m.page.Close()
		m.page = nil
	}
}

func (m *Model) setTheme(th *theme.Theme) {
	m.th = th
	m.styles = newStyles(th)
	if m.page != nil {
		m.page.SetTheme(th)
	}
	m.logger.Debug("theme applied", "name", th.Name)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	if m.page != nil {
		body = column(
			m.styles.title.Render(m.pageDemo.Title),
			m.styles.subtitle.Render(m.pageDemo.Subtitle),
			m.page.View(m.width-4),
			"",
			m.help.View(pageKeys{m.keys}),
		)
	} else {
		body = m.listView()
	}
	return m.zones.Scan(m.styles.page.Render(body))
}

func (m *Model) listView() string {
	lines := []string{
		m.styles.title.Render("Spark showcase"),
		m.styles.subtitle.Render("Theme: " + m.th.Name),
		"",
	}
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View(), "")
	}
	category := ""
	for i, idx := range m.visible {
		d := demos[idx]
		if d.Category != category {
			category = d.Category
			lines = append(lines, m.styles.sectionTitle(strings.ToUpper(category)))
		}
		title := d.Title
		if i == m.cursor {
			title = m.styles.selected.Render(title)
		}
		entry := m.styles.marker(i == m.cursor) + title + "  " + m.styles.subtitle.Render(d.Subtitle)
		lines = append(lines, m.zones.Mark(demoZone(idx), entry))
	}
	if len(m.visible) == 0 {
		lines = append(lines, m.styles.label.Render("no demo matches"))
	}
	if m.notice != "" {
		lines = append(lines, "", m.styles.label.Render(m.notice))
	}
	lines = append(lines, "", m.help.View(listKeys{m.keys}))
	return column(lines...)
}

func demoZone(idx int) string {
	return "demo-" + demos[idx].Route
}

// inZone reports whether a mouse event hit the zone marked id.
func inZone(zones *zone.Manager, id string, msg tea.MouseMsg) bool {
	info := zones.Get(id)
	return info != nil && info.InBounds(msg)
}

// Close releases the showcase's resources.
func (m *Model) Close() {
	m.closePage()
	m.subs.Dispose()
	m.zones.Close()
}

// Run starts the showcase on the terminal and blocks until it exits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if opts.Watcher != nil {
		opts.Watcher.Dispatch = func(fn func()) { p.Send(dispatchMsg(fn)) }
		go func() {
			if err := opts.Watcher.Run(ctx); err != nil && ctx.Err() == nil {
				m.logger.Warn("theme watcher stopped", "err", err)
			}
		}()
	}
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return errors.E("showcase.Run", errors.KindRender, err)
	}
	return nil
}

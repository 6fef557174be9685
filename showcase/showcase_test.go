package showcase

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spark/pkg/components/progressbar"
	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
	sparktest "github.com/go-drift/spark/pkg/testing"
	"github.com/go-drift/spark/pkg/theme"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(Options{Logger: logging.Nop(), StepInterval: progressbar.StepInterval})
	t.Cleanup(m.Close)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestNew_ListsEveryDemo(t *testing.T) {
	m := newTestModel(t)
	assert.Len(t, m.visible, len(demos))
	assert.Nil(t, m.Page())
	assert.Equal(t, theme.BrightnessLight, m.Theme().Brightness)

	view := m.View()
	for _, d := range demos {
		assert.Contains(t, view, d.Title)
	}
}

func TestFilter_FuzzyMatches(t *testing.T) {
	m := newTestModel(t)
	send(m, keyRunes("/"), keyRunes("p"), keyRunes("r"), keyRunes("o"), keyRunes("g"))
	require.NotEmpty(t, m.visible)
	assert.Equal(t, "/progress", demos[m.visible[0]].Route)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Page())
	assert.IsType(t, &progressPage{}, m.Page())
}

func TestFilter_EscClears(t *testing.T) {
	m := newTestModel(t)
	send(m, keyRunes("/"), keyRunes("z"), keyRunes("z"), keyRunes("z"))
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "no demo matches")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filtering)
	assert.Len(t, m.visible, len(demos))
}

func TestOpenAndBack(t *testing.T) {
	m := newTestModel(t)
	send(m, keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Page())
	assert.Equal(t, demos[1].Route, m.pageDemo.Route)
	assert.Contains(t, m.View(), demos[1].Title)

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Page())
}

func TestOpenRoute_Unknown(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.OpenRoute("/nope"))
	assert.True(t, m.OpenRoute("/theming"))
}

type panicRecorder struct{ got []*errors.PanicError }

func (r *panicRecorder) HandleError(*errors.SparkError)     {}
func (r *panicRecorder) HandlePanic(err *errors.PanicError) { r.got = append(r.got, err) }

func TestOpen_FailingDemoStaysOnList(t *testing.T) {
	rec := &panicRecorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	m := newTestModel(t)
	m.open(Demo{Route: "/broken", Title: "Broken", Builder: func(*Env) Page { panic("no palette") }})

	assert.Nil(t, m.Page())
	require.Len(t, rec.got, 1)
	assert.Equal(t, "showcase.open", rec.got[0].Op)
	assert.Contains(t, m.View(), "Broken failed to open: no palette")

	require.True(t, m.OpenRoute("/buttons"))
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "failed to open")
}

func TestEveryPageRenders(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	for _, d := range demos {
		t.Run(d.Route, func(t *testing.T) {
			require.True(t, m.OpenRoute(d.Route))
			send(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes(" "), tea.KeyMsg{Type: tea.KeyEnter})
			assert.NotEmpty(t, m.View())
			send(m, keyRunes("t"))
			assert.NotEmpty(t, m.View())
			send(m, keyRunes("t"))
		})
	}
}

func TestThemeToggle_ReachesPage(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/theming"))
	send(m, keyRunes("t"))
	assert.Equal(t, theme.BrightnessDark, m.Theme().Brightness)
	assert.Equal(t, theme.BrightnessDark, m.Page().(*themingPage).th.Brightness)
}

func TestButtonsPage_KeyboardTap(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/buttons"))
	p := m.Page().(*buttonsPage)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, p.buttons[0].Status().IsHighlighted)
	assert.Zero(t, p.taps)

	send(m, frameMsg(time.Now()))
	assert.False(t, p.buttons[0].Status().IsHighlighted)
	assert.Equal(t, 1, p.taps)
	assert.Equal(t, "Save", p.last)

	// A disabled button takes no taps.
	send(m, keyRunes("d"), tea.KeyMsg{Type: tea.KeyEnter}, frameMsg(time.Now()))
	assert.Equal(t, 1, p.taps)
}

func TestButtonsPage_ToggleTitle(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/buttons"))
	p := m.Page().(*buttonsPage)
	follow := p.buttons[len(p.buttons)-1]

	for range len(p.buttons) - 1 {
		send(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	send(m, keyRunes(" "))
	assert.Equal(t, "Following", follow.Title().Value())
	send(m, keyRunes("d"))
	assert.Equal(t, "Unavailable", follow.Title().Value())
}

func TestCheckboxesPage_ParentFollowsChildren(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/checkboxes"))
	p := m.Page().(*checkboxesPage)

	send(m, keyRunes(" "))
	for _, vm := range p.children {
		assert.Equal(t, "selected", vm.Selection().Value().String())
	}
	send(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes(" "))
	assert.Equal(t, "indeterminate", p.parent.Selection().Value().String())
}

func TestSlidersPage_StepsAndSprings(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/sliders"))
	p := m.Page().(*slidersPage)
	volume := p.entries[0].vm

	send(m, keyRunes("l"), keyRunes("l"))
	assert.Equal(t, 60.0, volume.Value().Value())

	for range 120 {
		send(m, frameMsg(time.Now()))
	}
	assert.InDelta(t, 0.6, p.entries[0].spring.Position(), 0.01)
}

func TestTextFieldsPage_CapturesTyping(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/textfields"))
	p := m.Page().(*textFieldsPage)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.CapturesText())
	send(m, keyRunes("q"), keyRunes("t"))
	assert.False(t, m.quitting)
	assert.Equal(t, "qt", p.fields[0].vm.Text().Value())
	assert.Equal(t, "not a valid address", p.fields[0].vm.Helper().Value())
	assert.True(t, p.fields[0].vm.Focused())

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.CapturesText())
	assert.False(t, p.fields[0].vm.Focused())
	assert.Equal(t, "Email: qt", p.submitted)
}

func TestRatingsPage_Keys(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/ratings"))
	p := m.Page().(*ratingsPage)
	vm := p.entries[0].vm

	send(m, keyRunes("l"))
	assert.Equal(t, 4.0, vm.Value().Value())
	send(m, keyRunes("h"), keyRunes("h"), keyRunes("h"), keyRunes("h"))
	assert.Equal(t, 0.0, vm.Value().Value())

	// The average is read-only.
	send(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("l"))
	assert.Equal(t, 3.6, p.entries[1].vm.Value().Value())
}

func TestProgressPage_StepsOnFrames(t *testing.T) {
	sched := sparktest.NewFakeScheduler(t)
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/progress"))
	p := m.Page().(*progressPage)
	m.View()

	require.True(t, p.loader.IsAnimating())
	assert.Equal(t, progressbar.PhaseEaseIn, p.loader.Phase().Value())

	sched.Clock().Advance(progressbar.StepInterval)
	send(m, frameMsg(time.Now()))
	assert.Equal(t, progressbar.PhaseEaseOut, p.loader.Phase().Value())

	// Space stops the loop; later frames change nothing.
	send(m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes(" "))
	assert.False(t, p.loader.IsAnimating())
	assert.False(t, p.animator.Running())
	sched.Clock().Advance(3 * progressbar.StepInterval)
	send(m, frameMsg(time.Now()))
	assert.Equal(t, progressbar.PhaseNone, p.loader.Phase().Value())

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.scheduler.HasActiveTasks())
}

func TestPopoversPage(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/popovers"))
	p := m.Page().(*popoversPage)
	assert.True(t, p.entries[0].vm.Presented().Value())

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.entries[0].vm.Presented().Value())
	send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes(" "))
	assert.True(t, p.entries[1].vm.Presented().Value())
	assert.False(t, p.entries[1].vm.ShowArrow().Value())
}

func TestThemingPage_Export(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.OpenRoute("/theming"))
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "version: 1.0.0")
}

func TestProgram_OpensDemoAndQuits(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestModel(t), teatest.WithInitialTermSize(100, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Spark showcase"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Per-state title"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(keyRunes("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.True(t, fm.quitting)
}

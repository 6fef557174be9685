package showcase

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-drift/spark/pkg/animation"
	"github.com/go-drift/spark/pkg/theme"
)

// Page is an open demo. Pages receive every key, mouse and frame message
// while they are shown.
type Page interface {
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	SetTheme(th *theme.Theme)
	Close()
}

// textCapturer is implemented by pages that take typed text. While
// CapturesText is true only ctrl+c and esc keep their global meaning.
type textCapturer interface {
	CapturesText() bool
}

// Env is what a demo page is built from.
type Env struct {
	Theme        *theme.Theme
	Keys         keyMap
	Scheduler    animation.Scheduler
	StepInterval time.Duration
	// FPS is the frame rate pages are stepped at.
	FPS    int
	Zones  *zone.Manager
	Logger *slog.Logger
}

// Demo represents a showcase demo page.
type Demo struct {
	Route    string
	Title    string
	Subtitle string
	Category string
	Builder  func(env *Env) Page
}

// Category constants for demo organization.
const (
	CategoryControls   = "controls"
	CategoryIndicators = "indicators"
	CategoryTheming    = "theming"
)

// demos is the registry of all showcase demo pages.
// Add new demos here to automatically update the list and the filter.
var demos = []Demo{
	{"/buttons", "Buttons", "Variants, sizes and per-state titles", CategoryControls, newButtonsPage},
	{"/checkboxes", "Checkboxes", "Tri-state selection", CategoryControls, newCheckboxesPage},
	{"/sliders", "Sliders", "Stepped and continuous values", CategoryControls, newSlidersPage},
	{"/textfields", "Text Fields", "Focus borders and validation intents", CategoryControls, newTextFieldsPage},
	{"/ratings", "Ratings", "Half stars and interactive input", CategoryControls, newRatingsPage},
	{"/tags", "Tags", "Intent colored labels", CategoryIndicators, newTagsPage},
	{"/progress", "Progress", "Determinate and indeterminate bars", CategoryIndicators, newProgressPage},
	{"/popovers", "Popovers", "Wrapped text bubbles", CategoryIndicators, newPopoversPage},
	{"/theming", "Theming", "Palette, radii and dims", CategoryTheming, newThemingPage},
}

// Demos returns the registered demos in display order.
func Demos() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// demoSource adapts demos to fuzzy.Source, matching on title and subtitle.
type demoSource []Demo

func (s demoSource) String(i int) string { return s[i].Title + " " + s[i].Subtitle }
func (s demoSource) Len() int            { return len(s) }

// Package theme holds the design tokens every component derives its look
// from: semantic colors, corner radii, spacing, opacity dims and border
// widths.
//
// Components never read raw colors. Their use cases take a [Theme] and an
// intent and return the colors to paint:
//
//	colors := button.GetColors(theme.IntentMain, button.VariantFilled, th)
//
// Themes come from [DefaultLight], [DefaultDark] or a YAML file ([Load]).
package theme

import (
	"fmt"

	"github.com/go-drift/spark/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorToken groups the colors of one semantic role.
type ColorToken struct {
	// Color is the role's base color.
	Color graphics.Color
	// OnColor is the content color drawn on top of Color.
	OnColor graphics.Color
	// Container is a low-emphasis fill for the role.
	Container graphics.Color
	// OnContainer is the content color drawn on top of Container.
	OnContainer graphics.Color
	// Variant is the pressed/active shade of Color.
	Variant graphics.Color
}

// Colors is the semantic palette.
type Colors struct {
	Main    ColorToken
	Support ColorToken
	Accent  ColorToken
	Basic   ColorToken
	Success ColorToken
	Alert   ColorToken
	Error   ColorToken
	Info    ColorToken
	Neutral ColorToken

	Background       graphics.Color
	OnBackground     graphics.Color
	Surface          graphics.Color
	OnSurface        graphics.Color
	SurfaceInverse   graphics.Color
	OnSurfaceInverse graphics.Color
	Outline          graphics.Color
	OutlineHigh      graphics.Color
}

// Radii are corner radius tokens.
type Radii struct {
	None   float64
	Small  float64
	Medium float64
	Large  float64
	XLarge float64
	Full   float64
}

// Spacing are layout spacing tokens.
type Spacing struct {
	None    float64
	XSmall  float64
	Small   float64
	Medium  float64
	Large   float64
	XLarge  float64
	XXLarge float64
}

// Dims are opacity tokens, strongest first.
type Dims struct {
	Dim1 float64
	Dim2 float64
	Dim3 float64
	Dim4 float64
	Dim5 float64
}

// BorderWidths are stroke width tokens.
type BorderWidths struct {
	None   float64
	Small  float64
	Medium float64
	Large  float64
}

// Theme contains every design token.
type Theme struct {
	Name       string
	Brightness Brightness
	Colors     Colors
	Radii      Radii
	Spacing    Spacing
	Dims       Dims
	Border     BorderWidths
}

// Copy returns an independent copy that can be mutated freely.
func (t *Theme) Copy() *Theme {
	c := *t
	return &c
}

// CopyWith returns a copy with the given token groups replaced. Nil
// arguments keep the current values.
func (t *Theme) CopyWith(colors *Colors, radii *Radii, spacing *Spacing) *Theme {
	c := t.Copy()
	if colors != nil {
		c.Colors = *colors
	}
	if radii != nil {
		c.Radii = *radii
	}
	if spacing != nil {
		c.Spacing = *spacing
	}
	return c
}

func (t *Theme) String() string {
	return fmt.Sprintf("Theme(%s, %s)", t.Name, t.Brightness)
}

// Intent is a semantic role shared by components. Each component accepts
// the subset it supports.
type Intent int

const (
	IntentMain Intent = iota
	IntentSupport
	IntentAccent
	IntentBasic
	IntentSuccess
	IntentAlert
	IntentDanger
	IntentInfo
	IntentNeutral
	IntentSurface
)

// Intents lists every intent in declaration order.
var Intents = []Intent{
	IntentMain, IntentSupport, IntentAccent, IntentBasic, IntentSuccess,
	IntentAlert, IntentDanger, IntentInfo, IntentNeutral, IntentSurface,
}

var intentNames = map[Intent]string{
	IntentMain:    "main",
	IntentSupport: "support",
	IntentAccent:  "accent",
	IntentBasic:   "basic",
	IntentSuccess: "success",
	IntentAlert:   "alert",
	IntentDanger:  "danger",
	IntentInfo:    "info",
	IntentNeutral: "neutral",
	IntentSurface: "surface",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// ParseIntent parses an intent name.
func ParseIntent(name string) (Intent, error) {
	for intent, n := range intentNames {
		if n == name {
			return intent, nil
		}
	}
	return IntentMain, fmt.Errorf("unknown intent %q", name)
}

// Token returns the color role for intent. Surface maps onto the surface
// colors: Color is the surface, OnColor draws on it, and the inverse
// surface serves as its container and pressed shade.
func (c Colors) Token(intent Intent) ColorToken {
	switch intent {
	case IntentSupport:
		return c.Support
	case IntentAccent:
		return c.Accent
	case IntentBasic:
		return c.Basic
	case IntentSuccess:
		return c.Success
	case IntentAlert:
		return c.Alert
	case IntentDanger:
		return c.Error
	case IntentInfo:
		return c.Info
	case IntentNeutral:
		return c.Neutral
	case IntentSurface:
		return ColorToken{
			Color:       c.Surface,
			OnColor:     c.OnSurface,
			Container:   c.SurfaceInverse,
			OnContainer: c.OnSurfaceInverse,
			Variant:     c.SurfaceInverse,
		}
	default:
		return c.Main
	}
}

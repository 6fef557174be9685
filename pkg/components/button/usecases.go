package button

import (
	"github.com/go-drift/spark/pkg/components"
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Colors are a button's colors at rest and while pressed.
type Colors struct {
	Foreground        graphics.Color
	Background        graphics.Color
	PressedBackground graphics.Color
	Border            graphics.Color
	PressedBorder     graphics.Color
}

// CurrentColors are the colors to paint right now.
type CurrentColors struct {
	Foreground graphics.Color
	Background graphics.Color
	Border     graphics.Color
}

// Current picks the rest or pressed colors.
func (c Colors) Current(pressed bool) CurrentColors {
	if pressed {
		return CurrentColors{Foreground: c.Foreground, Background: c.PressedBackground, Border: c.PressedBorder}
	}
	return CurrentColors{Foreground: c.Foreground, Background: c.Background, Border: c.Border}
}

// GetColors returns the colors of a button.
func GetColors(intent theme.Intent, variant Variant, th *theme.Theme) Colors {
	token := th.Colors.Token(intent)
	none := graphics.ColorTransparent
	switch variant {
	case VariantOutlined:
		return Colors{
			Foreground:        token.Color,
			Background:        none,
			PressedBackground: token.Color.WithAlpha(th.Dims.Dim5),
			Border:            token.Color,
			PressedBorder:     token.Variant,
		}
	case VariantTinted:
		return Colors{
			Foreground:        token.OnContainer,
			Background:        token.Container,
			PressedBackground: graphics.Lerp(token.Container, token.Color, th.Dims.Dim4),
			Border:            none,
			PressedBorder:     none,
		}
	case VariantGhost:
		return Colors{
			Foreground:        token.Color,
			Background:        none,
			PressedBackground: token.Color.WithAlpha(th.Dims.Dim5),
			Border:            none,
			PressedBorder:     none,
		}
	case VariantContrast:
		return Colors{
			Foreground:        token.Color,
			Background:        th.Colors.Surface,
			PressedBackground: graphics.Lerp(th.Colors.Surface, token.Color, th.Dims.Dim5),
			Border:            none,
			PressedBorder:     none,
		}
	default:
		return Colors{
			Foreground:        token.OnColor,
			Background:        token.Color,
			PressedBackground: token.Variant,
			Border:            none,
			PressedBorder:     none,
		}
	}
}

// Height returns the button height for size.
func Height(size components.Size) float64 {
	switch size {
	case components.SizeSmall:
		return 32
	case components.SizeLarge:
		return 56
	default:
		return 44
	}
}

// Spacings are the inner paddings of a button.
type Spacings struct {
	Vertical   float64
	Horizontal float64
	IconTitle  float64
}

// GetSpacings returns the paddings for size.
func GetSpacings(size components.Size, th *theme.Theme) Spacings {
	s := Spacings{Vertical: th.Spacing.Small, Horizontal: th.Spacing.Large, IconTitle: th.Spacing.Medium}
	switch size {
	case components.SizeSmall:
		s.Vertical = th.Spacing.XSmall
		s.Horizontal = th.Spacing.Medium
		s.IconTitle = th.Spacing.Small
	case components.SizeLarge:
		s.Vertical = th.Spacing.Medium
		s.Horizontal = th.Spacing.XLarge
	}
	return s
}

// Border is the outline of a button.
type Border struct {
	Width  float64
	Radius float64
}

// GetBorder returns the border for variant and shape. Only outlined
// buttons stroke their edge.
func GetBorder(variant Variant, shape components.Shape, th *theme.Theme) Border {
	b := Border{Radius: components.CornerRadius(shape, th)}
	if variant == VariantOutlined {
		b.Width = th.Border.Small
	}
	return b
}

package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/spark/pkg/graphics"
)

// PointsPerCell is the number of points drawn by one terminal column.
const PointsPerCell = 8

// Cells converts points to whole terminal columns.
func Cells(points float64) int {
	return int(math.Round(points / PointsPerCell))
}

// Blend composites c over bg and drops the alpha channel.
func Blend(c, bg graphics.Color) graphics.Color {
	return graphics.Lerp(bg.WithAlpha(1), c.WithAlpha(1), c.Alpha())
}

// Fade blends c toward bg by opacity, as if the content were drawn at
// that opacity.
func Fade(c graphics.Color, opacity float64, bg graphics.Color) graphics.Color {
	return graphics.Lerp(bg.WithAlpha(1), Blend(c, bg), opacity)
}

// Color converts c, composited over bg, to a lipgloss color.
func Color(c, bg graphics.Color) lipgloss.Color {
	return lipgloss.Color(Blend(c, bg).Hex())
}

// Border picks the lipgloss border for a stroke width and corner radius.
// A zero width has no border.
func Border(width, radius float64) (lipgloss.Border, bool) {
	switch {
	case width <= 0:
		return lipgloss.Border{}, false
	case width >= 2:
		return lipgloss.ThickBorder(), true
	case radius > 0:
		return lipgloss.RoundedBorder(), true
	default:
		return lipgloss.NormalBorder(), true
	}
}

package progressbar

import (
	"github.com/go-drift/spark/pkg/graphics"
	"github.com/go-drift/spark/pkg/theme"
)

// Colors are the two fills of a progress bar.
type Colors struct {
	Track     graphics.Color
	Indicator graphics.Color
}

// GetColors returns the colors of a bar with the given intent.
func GetColors(intent theme.Intent, th *theme.Theme) Colors {
	return Colors{
		Track:     th.Colors.OnBackground.WithAlpha(th.Dims.Dim4),
		Indicator: th.Colors.Token(intent).Color,
	}
}

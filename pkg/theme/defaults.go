package theme

import "github.com/go-drift/spark/pkg/graphics"

var hex = graphics.MustParseColor

// DefaultRadii returns the stock corner radius scale.
func DefaultRadii() Radii {
	return Radii{None: 0, Small: 4, Medium: 8, Large: 16, XLarge: 24, Full: 999}
}

// DefaultSpacing returns the stock spacing scale.
func DefaultSpacing() Spacing {
	return Spacing{None: 0, XSmall: 2, Small: 4, Medium: 8, Large: 16, XLarge: 24, XXLarge: 32}
}

// DefaultDims returns the stock opacity scale.
func DefaultDims() Dims {
	return Dims{Dim1: 0.72, Dim2: 0.56, Dim3: 0.40, Dim4: 0.16, Dim5: 0.08}
}

// DefaultBorderWidths returns the stock stroke widths.
func DefaultBorderWidths() BorderWidths {
	return BorderWidths{None: 0, Small: 1, Medium: 2, Large: 4}
}

// LightColors returns the light palette.
func LightColors() Colors {
	return Colors{
		Main:    ColorToken{hex("#4F5BD5"), hex("#FFFFFF"), hex("#E6E8FF"), hex("#1B2372"), hex("#3A45B0")},
		Support: ColorToken{hex("#EC5A13"), hex("#FFFFFF"), hex("#FFE9DC"), hex("#6B2204"), hex("#C5470B")},
		Accent:  ColorToken{hex("#8E3FD4"), hex("#FFFFFF"), hex("#F3E6FF"), hex("#40116B"), hex("#7330AE")},
		Basic:   ColorToken{hex("#39476E"), hex("#FFFFFF"), hex("#E4E8F2"), hex("#121B36"), hex("#2A3554")},
		Success: ColorToken{hex("#2D9D5C"), hex("#FFFFFF"), hex("#DDF5E7"), hex("#0D4526"), hex("#217A46")},
		Alert:   ColorToken{hex("#F2A71B"), hex("#1C1C1C"), hex("#FFF2D6"), hex("#5C3B00"), hex("#CF8A0C")},
		Error:   ColorToken{hex("#D8283C"), hex("#FFFFFF"), hex("#FFE1E4"), hex("#64091A"), hex("#B01B2E")},
		Info:    ColorToken{hex("#1D83D4"), hex("#FFFFFF"), hex("#DDEEFC"), hex("#0A3A60"), hex("#1669AB")},
		Neutral: ColorToken{hex("#6B7280"), hex("#FFFFFF"), hex("#ECEDEF"), hex("#23262B"), hex("#555B66")},

		Background:       hex("#FFFFFF"),
		OnBackground:     hex("#1C1C1C"),
		Surface:          hex("#FFFFFF"),
		OnSurface:        hex("#1C1C1C"),
		SurfaceInverse:   hex("#2B2B2B"),
		OnSurfaceInverse: hex("#F5F5F5"),
		Outline:          hex("#C4C7CE"),
		OutlineHigh:      hex("#1C1C1C"),
	}
}

// DarkColors returns the dark palette.
func DarkColors() Colors {
	return Colors{
		Main:    ColorToken{hex("#A8B1FF"), hex("#141B5C"), hex("#2C3578"), hex("#E6E8FF"), hex("#8C96F0")},
		Support: ColorToken{hex("#FFA77A"), hex("#4D1800"), hex("#6B2A0A"), hex("#FFE9DC"), hex("#F08A55")},
		Accent:  ColorToken{hex("#D3A6FF"), hex("#37075E"), hex("#512080"), hex("#F3E6FF"), hex("#BE84F5")},
		Basic:   ColorToken{hex("#B6C2E2"), hex("#16203B"), hex("#2E3A5C"), hex("#E4E8F2"), hex("#9AA7CB")},
		Success: ColorToken{hex("#6FD89C"), hex("#003919"), hex("#1B5A36"), hex("#DDF5E7"), hex("#4FC07F")},
		Alert:   ColorToken{hex("#FFCB66"), hex("#3D2800"), hex("#5C4000"), hex("#FFF2D6"), hex("#F0B53F")},
		Error:   ColorToken{hex("#FF8A96"), hex("#5C0011"), hex("#7D1426"), hex("#FFE1E4"), hex("#F26675")},
		Info:    ColorToken{hex("#7DBFF5"), hex("#00315A"), hex("#124A78"), hex("#DDEEFC"), hex("#58A8E8")},
		Neutral: ColorToken{hex("#B0B5BE"), hex("#202328"), hex("#3A3E45"), hex("#ECEDEF"), hex("#969CA7")},

		Background:       hex("#121212"),
		OnBackground:     hex("#F1F1F1"),
		Surface:          hex("#1C1C1C"),
		OnSurface:        hex("#F1F1F1"),
		SurfaceInverse:   hex("#F1F1F1"),
		OnSurfaceInverse: hex("#1C1C1C"),
		Outline:          hex("#4A4D55"),
		OutlineHigh:      hex("#F1F1F1"),
	}
}

// DefaultLight returns the default light theme.
func DefaultLight() *Theme {
	return &Theme{
		Name:       "spark-light",
		Brightness: BrightnessLight,
		Colors:     LightColors(),
		Radii:      DefaultRadii(),
		Spacing:    DefaultSpacing(),
		Dims:       DefaultDims(),
		Border:     DefaultBorderWidths(),
	}
}

// DefaultDark returns the default dark theme.
func DefaultDark() *Theme {
	return &Theme{
		Name:       "spark-dark",
		Brightness: BrightnessDark,
		Colors:     DarkColors(),
		Radii:      DefaultRadii(),
		Spacing:    DefaultSpacing(),
		Dims:       DefaultDims(),
		Border:     DefaultBorderWidths(),
	}
}

// Default returns the default theme for brightness.
func Default(b Brightness) *Theme {
	if b == BrightnessDark {
		return DefaultDark()
	}
	return DefaultLight()
}

package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the colors and metrics shared by the board and panels.
type Theme struct {
	Background  rl.Color
	BoardBg     rl.Color
	BoardBorder rl.Color
	CellAlive   rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color

	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	StalledColor  rl.Color

	FontSize       int32
	HeaderFontSize int32
	LineHeight     int32
	Padding        int32
	LabelWidth     int32
	BarHeight      int32
	BarBg          rl.Color
	BarFill        rl.Color
}

// DefaultTheme returns the standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  rl.Color{R: 18, G: 18, B: 24, A: 255},
		BoardBg:     rl.Color{R: 28, G: 28, B: 36, A: 255},
		BoardBorder: rl.Color{R: 70, G: 70, B: 85, A: 255},
		CellAlive:   rl.Color{R: 120, G: 220, B: 130, A: 255},
		PanelBg:     rl.Color{R: 24, G: 24, B: 32, A: 255},
		PanelBorder: rl.Color{R: 60, G: 60, B: 75, A: 255},

		SectionHeader: rl.Color{R: 200, G: 200, B: 120, A: 255},
		LabelColor:    rl.Color{R: 170, G: 170, B: 180, A: 255},
		ValueColor:    rl.White,
		StalledColor:  rl.Color{R: 230, G: 110, B: 100, A: 255},

		FontSize:       12,
		HeaderFontSize: 14,
		LineHeight:     18,
		Padding:        12,
		LabelWidth:     90,
		BarHeight:      10,
		BarBg:          rl.Color{R: 45, G: 45, B: 55, A: 255},
		BarFill:        rl.Color{R: 120, G: 220, B: 130, A: 255},
	}
}

// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static board.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	PathColor       color.RGBA
	WaterColor      color.RGBA
	GridLineColor   color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	StrokeWidth     float32
}

// EntityColors holds the colors for towers, enemies and their overlays.
type EntityColors struct {
	TowerStroke     color.RGBA
	SelectedColor   color.RGBA
	HoverColor      color.RGBA
	HealthBackColor color.RGBA
	HealthFillColor color.RGBA
	FrozenColor     color.RGBA
	ConfusedColor   color.RGBA
	BurstColor      color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha treats the RGB channels of c as a straight color and applies alpha a.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

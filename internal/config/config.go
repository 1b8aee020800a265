// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1100
	ScreenHeight = 800

	BoardSize    = 15
	TileSize     = 2.0 // мировых единиц на клетку
	MaxDeltaTime = 0.1 // ограничение шага после подвисаний

	// Масштаб отрисовки: пикселей на мировую единицу.
	PixelsPerUnit = 22.0
	BoardOffsetX  = 40
	BoardOffsetY  = 70

	TowerRadiusFactor = 0.35
	EnemyRadius       = 6.0
	HealthBarWidth    = 16.0
	HealthBarHeight   = 3.0
	StrokeWidth       = 2.0

	HUDHeight        = 50
	PanelWidth       = 380
	ClickCooldown    = 150 // мс
	BurstDuration    = 0.5
	BurstMaxRadius   = 10.0 // мировых единиц
	AttackLineLife   = 0.15
	BroadcastRateFPS = 10
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GrassColor      = color.RGBA{51, 170, 51, 255}
	PathColor       = color.RGBA{204, 204, 204, 255}
	WaterColor      = color.RGBA{0, 153, 255, 255}
	GridLineColor   = color.RGBA{20, 60, 20, 255}
	EntryColor      = color.RGBA{255, 0, 0, 255}
	ExitColor       = color.RGBA{0, 255, 0, 255}
	HoverColor      = color.RGBA{90, 90, 90, 90}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PanelColor      = color.RGBA{30, 30, 45, 230}
	HealthBackColor = color.RGBA{255, 0, 0, 255}
	HealthFillColor = color.RGBA{0, 255, 0, 255}
	FrozenColor     = color.RGBA{170, 221, 255, 255}
	ConfusedColor   = color.RGBA{221, 204, 136, 255}
	BurstColor      = color.RGBA{255, 51, 0, 150}
	DefeatOverlay   = color.RGBA{0, 0, 0, 200}
	TowerStroke     = color.RGBA{255, 255, 255, 255}
)

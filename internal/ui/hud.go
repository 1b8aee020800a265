// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarX = 260
	healthBarW = 200
	healthBarH = 14
)

// HUD рисует верхнюю полосу: ресурсы, здоровье экосистемы, волну и последнее сообщение.
type HUD struct {
	face      font.Face
	maxHealth float64

	message      string
	messageTimer float64
}

func NewHUD(face font.Face, maxHealth float64) *HUD {
	return &HUD{face: face, maxHealth: maxHealth}
}

// Flash shows msg for a few seconds.
func (h *HUD) Flash(msg string) {
	h.message = msg
	h.messageTimer = 3
}

func (h *HUD) Update(deltaTime float64) {
	if h.messageTimer > 0 {
		h.messageTimer -= deltaTime
		if h.messageTimer <= 0 {
			h.message = ""
		}
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.PanelColor, false)

	baseline := 20
	text.Draw(screen, fmt.Sprintf("Resources: %d", snap.Resources), h.face, 16, baseline, config.TextLightColor)

	text.Draw(screen, "Ecosystem", h.face, healthBarX-80, baseline, config.TextLightColor)
	fraction := 0.0
	if h.maxHealth > 0 {
		fraction = snap.EcosystemHealth / h.maxHealth
	}
	top := float32(baseline - 11)
	vector.DrawFilledRect(screen, healthBarX, top, healthBarW, healthBarH, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, healthBarX, top, float32(healthBarW*utils.Clamp(fraction, 0, 1)), healthBarH, healthColor(fraction), false)
	text.Draw(screen, fmt.Sprintf("%.0f", snap.EcosystemHealth), h.face, healthBarX+healthBarW+8, baseline, config.TextLightColor)

	wave := fmt.Sprintf("Wave: %d", snap.Wave)
	switch {
	case snap.Defeat:
		wave += " (lost)"
	case snap.WaveInProgress:
		wave += fmt.Sprintf(" in progress, %d enemies", len(snap.Enemies))
	default:
		wave += "  [Space] next wave"
	}
	text.Draw(screen, wave, h.face, healthBarX+healthBarW+50, baseline, config.TextLightColor)

	if h.message != "" {
		text.Draw(screen, h.message, h.face, 16, baseline+20, color.RGBA{255, 210, 120, 255})
	}
}

// healthColor blends from red to green as the ecosystem recovers.
func healthColor(fraction float64) color.RGBA {
	f := utils.Clamp(fraction, 0, 1)
	return color.RGBA{
		R: uint8(utils.Lerp(255, 0, f)),
		G: uint8(utils.Lerp(0, 200, f)),
		B: 40,
		A: 255,
	}
}

// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin   = 10
	lineHeight    = 18
	elementBtnW   = 64
	elementBtnH   = 28
	actionBtnW    = 110
	actionBtnH    = 30
	sectionBuild  = 0
	sectionTower  = 110
	sectionAction = 290
)

// Action — что пользователь запросил кликом по панели.
type Action int

const (
	ActionNone Action = iota
	ActionSelectElement
	ActionUpgrade
	ActionFuse
	ActionStartWave
)

// InfoPanel is the right-hand panel: element picker, selected tower stats and action buttons.
type InfoPanel struct {
	rect      image.Rectangle
	fontFace  font.Face
	balance   config.TowerBalance
	elements  []*Button
	upgrade   *Button
	fuse      *Button
	startWave *Button
}

func NewInfoPanel(face font.Face, balance config.TowerBalance) *InfoPanel {
	x0 := config.ScreenWidth - config.PanelWidth
	y0 := config.HUDHeight + panelMargin
	p := &InfoPanel{
		rect:     image.Rect(x0, y0, config.ScreenWidth-panelMargin, config.ScreenHeight-panelMargin),
		fontFace: face,
		balance:  balance,
	}

	bx := x0 + panelMargin
	for i, e := range defs.BaseElements {
		def, _ := defs.BaseStatsFor(e)
		btn := NewButton(bx+i*(elementBtnW+6), y0+sectionBuild+28, elementBtnW, elementBtnH, def.Name, def.Color)
		p.elements = append(p.elements, btn)
	}

	ay := y0 + sectionAction
	p.upgrade = NewButton(bx, ay, actionBtnW, actionBtnH, "Upgrade [U]", color.RGBA{70, 130, 180, 255})
	p.fuse = NewButton(bx+actionBtnW+8, ay, actionBtnW, actionBtnH, "Fuse [F]", color.RGBA{180, 140, 20, 255})
	p.startWave = NewButton(bx+2*(actionBtnW+8), ay, actionBtnW, actionBtnH, "Wave [Space]", color.RGBA{60, 120, 60, 255})
	return p
}

// Contains reports whether a screen point is over the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.rect)
}

// HandleClick переводит клик в действие. Для ActionSelectElement возвращается выбранный элемент.
func (p *InfoPanel) HandleClick(x, y int) (Action, defs.Element) {
	for i, btn := range p.elements {
		if btn.Clicked(x, y) {
			return ActionSelectElement, defs.BaseElements[i]
		}
	}
	switch {
	case p.upgrade.Clicked(x, y):
		return ActionUpgrade, 0
	case p.fuse.Clicked(x, y):
		return ActionFuse, 0
	case p.startWave.Clicked(x, y):
		return ActionStartWave, 0
	}
	return ActionNone, 0
}

// BuildCost returns what building a tower of e costs.
func (p *InfoPanel) BuildCost(e defs.Element) int {
	if e == defs.ElementLife {
		return p.balance.LifeCost
	}
	return p.balance.Cost
}

// Draw рисует панель. tower может быть nil, если ничего не выбрано.
func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot, selected defs.Element, tower *app.TowerView, fuseMode bool) {
	r := p.rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, color.RGBA{70, 130, 180, 255}, false)

	x := r.Min.X + panelMargin
	y := r.Min.Y + 18
	text.Draw(screen, "Build", p.fontFace, x, y, config.TextLightColor)

	for i, btn := range p.elements {
		e := defs.BaseElements[i]
		btn.Active = e == selected
		btn.Disabled = snap.Defeat || snap.Resources < p.BuildCost(e)
		btn.Draw(screen, p.fontFace)
	}

	if def, ok := defs.BaseStatsFor(selected); ok {
		y = r.Min.Y + sectionBuild + 28 + elementBtnH + lineHeight
		line := fmt.Sprintf("%s: %s, cost %d", def.Name, def.Effect, p.BuildCost(selected))
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
	}

	p.drawTowerInfo(screen, tower, x, r.Min.Y+sectionTower)

	p.upgrade.Disabled = tower == nil || snap.Defeat || tower.Level >= p.balance.MaxLevel || snap.Resources < p.balance.UpgradeCost
	p.fuse.Disabled = tower == nil || snap.Defeat || snap.Resources < p.balance.FusionCost
	p.fuse.Active = fuseMode
	p.startWave.Disabled = snap.WaveInProgress || snap.Spawning || snap.Defeat
	p.upgrade.Draw(screen, p.fontFace)
	p.fuse.Draw(screen, p.fontFace)
	p.startWave.Draw(screen, p.fontFace)

	y = r.Min.Y + sectionAction + actionBtnH + lineHeight
	costs := fmt.Sprintf("Upgrade %d, fusion %d", p.balance.UpgradeCost, p.balance.FusionCost)
	text.Draw(screen, costs, p.fontFace, x, y, config.TextLightColor)
	if fuseMode {
		text.Draw(screen, "Click another tower to fuse, [F] to cancel", p.fontFace, x, y+lineHeight, color.RGBA{255, 215, 0, 255})
	}
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, tower *app.TowerView, x, y int) {
	if tower == nil {
		text.Draw(screen, "No tower selected", p.fontFace, x, y, color.RGBA{150, 150, 150, 255})
		return
	}
	title := fmt.Sprintf("%s (level %d)", tower.Name, tower.Level)
	text.Draw(screen, title, p.fontFace, x, y, config.TextLightColor)
	y += lineHeight

	lines := []string{
		fmt.Sprintf("Damage: %.2f", tower.Damage),
		fmt.Sprintf("Attack speed: %.2f/s", tower.AttackSpeed),
		fmt.Sprintf("Range: %.1f", tower.Range),
	}
	if len(tower.Effects) > 0 {
		lines = append(lines, "Effects: "+strings.Join(tower.Effects, ", "))
	}
	if tower.AuraBuff > 0 {
		lines = append(lines, fmt.Sprintf("Aura buff: +%.0f%%", tower.AuraBuff*100))
	}
	for _, l := range lines {
		text.Draw(screen, l, p.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}
}

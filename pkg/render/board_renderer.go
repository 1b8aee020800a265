package render

import (
	"math"

	"forest-guardians/internal/app"
	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer рисует доску, башни, врагов и эффекты по снимку состояния.
type BoardRenderer struct {
	proj     Projection
	colors   *MapColors
	entities *EntityColors
	mapImage *ebiten.Image // предрендеренная доска, тип клетки не меняется
}

func NewBoardRenderer(proj Projection, colors *MapColors, entities *EntityColors, screenWidth, screenHeight int) *BoardRenderer {
	return &BoardRenderer{
		proj:     proj,
		colors:   colors,
		entities: entities,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

func (r *BoardRenderer) Projection() Projection { return r.proj }

// RenderMapImage перерисовывает статичный слой доски. Вызывается при старте и после сброса.
func (r *BoardRenderer) RenderMapImage(snap app.Snapshot) {
	r.mapImage.Clear()
	side := float32(r.proj.TilePixels())

	for _, t := range snap.Tiles {
		x, y := r.proj.TileRect(t.X, t.Z)
		fill := r.colors.GrassColor
		switch t.Type {
		case "path":
			fill = r.colors.PathColor
		case "water":
			fill = r.colors.WaterColor
		}
		vector.DrawFilledRect(r.mapImage, x, y, side, side, fill, false)
		vector.StrokeRect(r.mapImage, x, y, side, side, 1, r.colors.GridLineColor, false)
	}

	if len(snap.Path) > 1 {
		marker := side / 4
		ex, ey := r.proj.ToScreen(snap.Path[0])
		vector.DrawFilledCircle(r.mapImage, ex, ey, marker, r.colors.EntryColor, true)
		xx, xy := r.proj.ToScreen(snap.Path[len(snap.Path)-1])
		vector.DrawFilledCircle(r.mapImage, xx, xy, marker, r.colors.ExitColor, true)
	}
}

// Draw рисует кадр: доску, подсветку клетки под курсором, башни, врагов и эффекты.
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, selected types.EntityID, hoverX, hoverZ int, hover bool, effects EffectSource) {
	screen.DrawImage(r.mapImage, nil)

	if hover {
		x, y := r.proj.TileRect(hoverX, hoverZ)
		side := float32(r.proj.TilePixels())
		vector.DrawFilledRect(screen, x, y, side, side, r.entities.HoverColor, false)
	}

	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i], snap.Towers[i].ID == selected)
	}
	for i := range snap.Enemies {
		r.drawEnemy(screen, &snap.Enemies[i])
	}
	if effects != nil {
		r.drawEffects(screen, effects.Lines(), effects.Bursts())
	}
}

// EffectSource отдаёт активные визуальные эффекты.
type EffectSource interface {
	Lines() []*component.AttackLine
	Bursts() []*component.Burst
}

func (r *BoardRenderer) drawTower(screen *ebiten.Image, t *app.TowerView, selected bool) {
	cx, cy := r.proj.ToScreen(t.Position)
	radius := float32(config.TowerRadiusFactor * r.proj.TilePixels())
	fill := defs.TowerColor(t.Element, t.Evolution)

	if selected {
		rangePx := float32(t.Range * r.proj.Scale)
		vector.StrokeCircle(screen, cx, cy, rangePx, 1, WithAlpha(r.entities.SelectedColor, 120), true)
	}
	stroke := r.entities.TowerStroke
	if selected {
		stroke = r.entities.SelectedColor
	}
	vector.DrawFilledCircle(screen, cx, cy, radius+r.colors.StrokeWidth, stroke, true)
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)

	// уровень башни точками
	pip := float32(2)
	startX := cx - float32(t.Level-1)*pip*1.5
	for i := 0; i < t.Level; i++ {
		vector.DrawFilledCircle(screen, startX+float32(i)*pip*3, cy+radius+pip*2, pip, DarkenColor(fill), true)
	}
	if t.AuraBuff > 0 {
		vector.StrokeCircle(screen, cx, cy, radius+4, 1, WithAlpha(r.entities.HealthFillColor, 160), true)
	}
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, e *app.EnemyView) {
	cx, cy := r.proj.ToScreen(e.Position)
	def, ok := defs.LookupEnemy(e.Type)
	if !ok {
		def = defs.Minion
	}
	radius := float32(config.EnemyRadius * def.RadiusFactor)

	vector.DrawFilledCircle(screen, cx, cy, radius, def.Color, true)
	switch {
	case e.Frozen:
		vector.StrokeCircle(screen, cx, cy, radius+1, r.colors.StrokeWidth, r.entities.FrozenColor, true)
	case e.Confused:
		vector.StrokeCircle(screen, cx, cy, radius+1, r.colors.StrokeWidth, r.entities.ConfusedColor, true)
	}

	barX := cx - config.HealthBarWidth/2
	barY := cy - radius - config.HealthBarHeight - 2
	vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, r.entities.HealthBackColor, false)
	vector.DrawFilledRect(screen, barX, barY, float32(config.HealthBarWidth*e.HealthFraction), config.HealthBarHeight, r.entities.HealthFillColor, false)
}

func (r *BoardRenderer) drawEffects(screen *ebiten.Image, lines []*component.AttackLine, bursts []*component.Burst) {
	for _, l := range lines {
		x0, y0 := r.proj.ToScreen(l.From)
		x1, y1 := r.proj.ToScreen(l.To)
		c := r.entities.TowerStroke
		if l.Critical {
			c = r.entities.SelectedColor
		}
		fade := 1 - l.Timer/l.Duration
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, WithAlpha(c, uint8(255*math.Max(fade, 0))), true)
	}
	for _, b := range bursts {
		cx, cy := r.proj.ToScreen(b.Center)
		p := b.Progress()
		radius := float32(p * b.MaxRadius * r.proj.Scale)
		alpha := uint8(float64(r.entities.BurstColor.A) * (1 - p))
		vector.StrokeCircle(screen, cx, cy, radius, 3, WithAlpha(r.entities.BurstColor, alpha), true)
	}
}

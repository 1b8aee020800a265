// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/system"
	"forest-guardians/internal/types"
	"forest-guardians/internal/ui"
	"forest-guardians/pkg/logger"
	"forest-guardians/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var elementKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState drives the simulation, handles input and draws the board.
type GameState struct {
	sm         *StateMachine
	game       *app.Game
	renderer   *render.BoardRenderer
	effects    *system.VisualEffectSystem
	hud        *ui.HUD
	infoPanel  *ui.InfoPanel
	recipeBook *ui.RecipeBook
	fontFace   font.Face

	selectedElement defs.Element
	selectedTower   types.EntityID
	fuseMode        bool
	lastClickTime   time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	face := basicfont.Face7x13

	proj := render.Projection{
		Size:     config.BoardSize,
		TileSize: config.TileSize,
		Scale:    config.PixelsPerUnit,
		OffsetX:  config.BoardOffsetX,
		OffsetY:  config.BoardOffsetY,
	}
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		PathColor:       config.PathColor,
		WaterColor:      config.WaterColor,
		GridLineColor:   config.GridLineColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	entityColors := &render.EntityColors{
		TowerStroke:     config.TowerStroke,
		SelectedColor:   config.SelectedColor,
		HoverColor:      config.HoverColor,
		HealthBackColor: config.HealthBackColor,
		HealthFillColor: config.HealthFillColor,
		FrozenColor:     config.FrozenColor,
		ConfusedColor:   config.ConfusedColor,
		BurstColor:      config.BurstColor,
	}
	renderer := render.NewBoardRenderer(proj, mapColors, entityColors, config.ScreenWidth, config.ScreenHeight)
	renderer.RenderMapImage(game.Snapshot())

	effects := system.NewVisualEffectSystem(config.AttackLineLife, config.BurstDuration, config.BurstMaxRadius)
	effects.Subscribe(game.EventDispatcher)

	bookX := float32(config.ScreenWidth - config.PanelWidth + 10)
	bookY := float32(config.HUDHeight + 400)

	return &GameState{
		sm:              sm,
		game:            game,
		renderer:        renderer,
		effects:         effects,
		hud:             ui.NewHUD(face, game.Balance.Economy.MaxHealth),
		infoPanel:       ui.NewInfoPanel(face, game.Balance.Towers),
		recipeBook:      ui.NewRecipeBook(bookX, bookY, config.PanelWidth-30, config.ScreenHeight-bookY-20, face),
		fontFace:        face,
		selectedElement: defs.ElementWater,
		lastClickTime:   time.Now(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.World.Economy.Defeat {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
		x, y := ebiten.CursorPosition()
		if g.infoPanel.Contains(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleBoardClick(x, y)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clearSelection()
	}

	g.game.Update(deltaTime)
	g.effects.Update(deltaTime)
	g.hud.Update(deltaTime)

	// Башня могла исчезнуть после слияния
	if g.selectedTower != 0 && g.game.World.Tower(g.selectedTower) == nil {
		g.clearSelection()
	}
}

func (g *GameState) handleKeys() {
	for i, key := range elementKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectedElement = defs.BaseElements[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.upgradeSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFuse()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.recipeBook.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
}

func (g *GameState) handleUIClick(x, y int) {
	action, element := g.infoPanel.HandleClick(x, y)
	switch action {
	case ui.ActionSelectElement:
		g.selectedElement = element
	case ui.ActionUpgrade:
		g.upgradeSelected()
	case ui.ActionFuse:
		g.toggleFuse()
	case ui.ActionStartWave:
		g.startWave()
	}
}

// handleBoardClick: клик по башне выбирает её (или сливает в режиме слияния),
// клик по пустой клетке строит башню выбранного элемента.
func (g *GameState) handleBoardClick(x, y int) {
	gx, gz, ok := g.renderer.Projection().GridAt(x, y)
	if !ok {
		return
	}
	tile := g.game.World.Board.TileAt(gx, gz)
	if tile == nil {
		return
	}

	if tile.Occupied {
		if g.fuseMode && g.selectedTower != 0 && tile.TowerID != g.selectedTower {
			id, err := g.game.FuseTowers(g.selectedTower, tile.TowerID)
			g.fuseMode = false
			if g.report(err) {
				g.selectedTower = id
				g.hud.Flash("Fused: " + g.game.World.Tower(id).Name)
			}
			return
		}
		g.selectedTower = tile.TowerID
		g.fuseMode = false
		return
	}

	g.clearSelection()
	if _, err := g.game.BuildTower(tile.ID, g.selectedElement); g.report(err) {
		g.hud.Flash(g.selectedElement.String() + " tower built")
	}
}

func (g *GameState) upgradeSelected() {
	if g.selectedTower == 0 {
		g.hud.Flash("Select a tower first")
		return
	}
	if g.report(g.game.UpgradeTower(g.selectedTower)) {
		g.hud.Flash("Tower upgraded")
	}
}

func (g *GameState) toggleFuse() {
	if g.selectedTower == 0 {
		g.hud.Flash("Select a tower first")
		return
	}
	g.fuseMode = !g.fuseMode
}

func (g *GameState) startWave() {
	if g.report(g.game.StartWave()) {
		g.hud.Flash("Wave started")
	}
}

func (g *GameState) reset() {
	if err := g.game.Reset(); err != nil {
		logger.WithComponent("viewer").WithError(err).Error("reset failed")
		g.hud.Flash("Reset failed")
		return
	}
	g.clearSelection()
	g.effects.Clear()
	g.renderer.RenderMapImage(g.game.Snapshot())
	g.hud.Flash("New game")
}

func (g *GameState) clearSelection() {
	g.selectedTower = 0
	g.fuseMode = false
}

// report показывает причину отказа команды. Возвращает true, если ошибки нет.
func (g *GameState) report(err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, app.ErrInsufficientResources):
		g.hud.Flash("Not enough resources")
	case errors.Is(err, app.ErrInvalidPlacement):
		g.hud.Flash("Towers can only be built on free grass")
	case errors.Is(err, app.ErrMaxLevelReached):
		g.hud.Flash("Tower is at max level")
	case errors.Is(err, app.ErrInvalidFusion):
		g.hud.Flash("Pick two different towers to fuse")
	case errors.Is(err, app.ErrWaveInProgress):
		g.hud.Flash("Wave already in progress")
	case errors.Is(err, app.ErrDefeated):
		g.hud.Flash("The ecosystem is destroyed, press R")
	default:
		g.hud.Flash(err.Error())
	}
	logger.WithComponent("viewer").WithError(err).Debug("command rejected")
	return false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := g.game.Snapshot()

	x, y := ebiten.CursorPosition()
	hx, hz, hover := g.renderer.Projection().GridAt(x, y)
	g.renderer.Draw(screen, snap, g.selectedTower, hx, hz, hover, g.effects)

	g.hud.Draw(screen, snap)
	g.infoPanel.Draw(screen, snap, g.selectedElement, findTower(snap, g.selectedTower), g.fuseMode)
	g.recipeBook.Draw(screen, snap.Towers)
}

func findTower(snap app.Snapshot, id types.EntityID) *app.TowerView {
	if id == 0 {
		return nil
	}
	for i := range snap.Towers {
		if snap.Towers[i].ID == id {
			return &snap.Towers[i]
		}
	}
	return nil
}

// GetGame gives overlay states access to the running simulation.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

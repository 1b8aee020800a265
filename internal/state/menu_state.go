// internal/state/menu_state.go
package state

import (
	"fmt"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState shows the title screen with elements and controls.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	y := 160
	drawCentered(screen, "FOREST GUARDIANS", y)
	y += 40
	for i, e := range defs.BaseElements {
		def, _ := defs.BaseStatsFor(e)
		drawCentered(screen, fmt.Sprintf("[%d] %s: %s", i+1, def.Name, def.Effect), y)
		y += 20
	}
	y += 20
	for _, line := range []string{
		"Click grass to build, click a tower to select it",
		"[U] upgrade  [F] fuse with another tower  [Space] next wave",
		"[B] recipes  [P] pause  [R] restart",
		"",
		"Press [Space] to begin",
	} {
		drawCentered(screen, line, y)
		y += 20
	}
}

func (m *MenuState) Exit() {}

// internal/state/game_over_state.go
package state

import (
	"fmt"

	"forest-guardians/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывается после гибели экосистемы. R начинает новую игру.
type GameOverState struct {
	sm   *StateMachine
	game *GameState
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.game.reset()
		s.sm.SetState(s.game)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DefeatOverlay, false)

	econ := s.game.GetGame().World.Economy
	drawCentered(screen, "THE ECOSYSTEM HAS BEEN DESTROYED", config.ScreenHeight/2-24)
	drawCentered(screen, fmt.Sprintf("You held out until wave %d", econ.DefeatWave), config.ScreenHeight/2)
	drawCentered(screen, "[R] to start over", config.ScreenHeight/2+24)
}

func (s *GameOverState) Exit() {}

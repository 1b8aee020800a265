// internal/state/pause_state.go
package state

import (
	"image/color"

	"forest-guardians/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию, продолжая рисовать последний кадр.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	drawCentered(screen, "PAUSED", config.ScreenHeight/2)
	drawCentered(screen, "[P] or [Esc] to resume", config.ScreenHeight/2+24)
}

func (s *PauseState) Exit() {}

// drawCentered рисует строку по центру экрана по горизонтали.
func drawCentered(screen *ebiten.Image, msg string, y int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}

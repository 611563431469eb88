// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseOverlay = color.RGBA{0, 0, 0, 120}

// PauseState замораживает симуляцию: дельта не копится, касания не читаются.
// Под паузой рисуется последний кадр игры.
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
	// Снимается только клавишей: касание, начатое под паузой, игра увидела бы без нажатия
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", b.Dx()/2-18, b.Dy()/2)
}

func (s *PauseState) Exit() {}

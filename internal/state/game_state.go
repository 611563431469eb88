// internal/state/game_state.go
package state

import (
	"time"

	game "thermal-td/internal/app"
	"thermal-td/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// GameState состояние игры: кормит симуляцию касаниями и дельтой, рисует снимок.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	touches   *TouchReader
	now       func() time.Duration
	renderer  *ui.FieldRenderer
	infoPanel *ui.InfoPanel
	indicator *ui.GestureIndicator
	snapshot  game.Snapshot
}

// NewGameState создает состояние поверх готовой симуляции.
// now задает монотонное время для меток касаний.
func NewGameState(sm *StateMachine, g *game.Game, now func() time.Duration) *GameState {
	gs := &GameState{
		sm:        sm,
		game:      g,
		touches:   NewTouchReader(),
		now:       now,
		renderer:  ui.NewFieldRenderer(ui.DefaultFieldColors()),
		infoPanel: ui.NewInfoPanel(basicfont.Face7x13),
		indicator: ui.NewGestureIndicator(float32(g.Width)-30, 30, 10),
	}
	gs.snapshot = g.BuildSnapshot()
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	for _, ev := range g.touches.Poll(g.now()) {
		g.game.HandleTouch(ev)
	}
	g.game.Update(deltaTime)

	// Снимок берется между тиками, Draw читает только его
	g.snapshot = g.game.BuildSnapshot()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.snapshot)
	g.infoPanel.Draw(screen, g.snapshot)
	g.infoPanel.DrawHUD(screen, g.snapshot)
	g.indicator.Draw(screen, g.game.Gestures.State())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// cmd/game/main.go
package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"

	game "thermal-td/internal/app"
	"thermal-td/internal/config"
	"thermal-td/internal/logger"
	"thermal-td/internal/state"
	"thermal-td/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
	frames       *utils.FrameTimer
	game         *game.Game
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.frames.Delta())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout держит логический размер равным окну; поле растягивается вместе с ним.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != a.width || outsideHeight != a.height) {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return a.width, a.height
}

func main() {
	cfg, err := config.LoadHostConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	l := logger.New(os.Stdout, cfg.LogLevel)

	if cfg.PprofAddr != "" {
		go func() {
			l.Warn("pprof stopped", "err", http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}

	frames := utils.NewFrameTimer(utils.SystemClock{}, config.MaxDeltaTime)
	g := game.NewGame(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), cfg.Seed)
	g.EventDispatcher.SubscribeAll(logger.EventListener(l))
	slog.Info("starting", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "seed", g.Rng.Seed())

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, g, frames.Since))

	app := &AppGame{
		stateMachine: sm,
		frames:       frames,
		game:         g,
		width:        cfg.ScreenWidth,
		height:       cfg.ScreenHeight,
	}
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(1000 / config.FrameTarget)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

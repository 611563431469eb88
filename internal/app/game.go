// internal/app/game.go
package app

import (
	"log/slog"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/event"
	"thermal-td/internal/input"
	"thermal-td/internal/system"
	"thermal-td/internal/utils"
)

// Game владеет всем состоянием симуляции. Любое изменение идет через его методы:
// Update, PlaceTower, InspectTower, Restart и HandleTouch. Все вызовы из одного потока.
type Game struct {
	Width, Height float64

	Store           *entity.Store
	Session         *component.SessionState
	Rules           *system.DifficultyRules
	Gestures        *input.Classifier
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem        *system.SpawnSystem
	DifficultySystem   *system.DifficultySystem
	MovementSystem     *system.MovementSystem
	StateSystem        *system.StateSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
}

// NewGame создает сессию для поля width x height. seed 0 означает случайный сид.
func NewGame(width, height float64, seed int64) *Game {
	store := entity.NewStore()
	session := &component.SessionState{}
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	rules := system.NewDifficultyRules()

	g := &Game{
		Width:           width,
		Height:          height,
		Store:           store,
		Session:         session,
		Rules:           rules,
		Gestures:        input.NewClassifier(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.SpawnSystem = system.NewSpawnSystem(store, rng, eventDispatcher, height)
	g.DifficultySystem = system.NewDifficultySystem(store, rules, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(store, height)
	g.StateSystem = system.NewStateSystem(store, session, eventDispatcher, width)
	g.CombatSystem = system.NewCombatSystem(store, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(store)

	slog.Debug("game created", "width", width, "height", height, "seed", rng.Seed())
	return g
}

// Update продвигает симуляцию на deltaTime секунд (не больше config.MaxDeltaTime).
func (g *Game) Update(deltaTime float64) {
	deltaTime = utils.Clamp(deltaTime, 0, config.MaxDeltaTime)

	// Окно двух пальцев живет и после поражения
	g.Gestures.Tick(deltaTime)
	if g.Session.Lost {
		return
	}
	g.Session.Elapsed += deltaTime

	g.SpawnSystem.Update(deltaTime)
	g.DifficultySystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	if g.StateSystem.CheckBreach() {
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// IsLost сообщает, проиграна ли сессия
func (g *Game) IsLost() bool {
	return g.Session.Lost
}

// HandleTouch передает событие распознавателю жестов и выполняет команду.
// Любое событие считается обработанным.
func (g *Game) HandleTouch(ev input.Event) bool {
	cmd := g.Gestures.Handle(ev, g.Session.Lost)
	g.Apply(cmd)
	return true
}

// Apply выполняет распознанную команду
func (g *Game) Apply(cmd input.Command) {
	switch cmd.Kind {
	case input.CommandPlace:
		g.PlaceTower(cmd.X, cmd.Y)
	case input.CommandInspect:
		g.InspectTower(cmd.X, cmd.Y)
	case input.CommandRestart:
		g.Restart()
	}
}

// Restart очищает поле и возвращает сессию, таймеры и профиль к начальным значениям.
func (g *Game) Restart() {
	g.Store.Clear()
	g.StateSystem.Reset()
	g.SpawnSystem.Reset()
	g.DifficultySystem.Reset()
	g.Gestures.Reset()
	g.Rules.Reset()

	slog.Info("session restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionRestarted})
}

// Resize меняет размер поля. Хост вызывает его при смене размера окна.
func (g *Game) Resize(width, height float64) {
	g.Width, g.Height = width, height
	g.SpawnSystem.SetFieldHeight(height)
	g.MovementSystem.SetFieldHeight(height)
	g.StateSystem.SetFieldWidth(width)
}

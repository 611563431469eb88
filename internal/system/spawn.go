// internal/system/spawn.go
package system

import (
	"log/slog"
	"math"

	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/event"
	"thermal-td/internal/utils"
)

// SpawnSystem выпускает врагов с левого края через равные промежутки.
type SpawnSystem struct {
	store           *entity.Store
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	fieldHeight     float64
	timer           float64
}

func NewSpawnSystem(store *entity.Store, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, fieldHeight float64) *SpawnSystem {
	return &SpawnSystem{
		store:           store,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		fieldHeight:     fieldHeight,
		timer:           config.SpawnWarmup,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timer -= deltaTime
	if s.timer > 0 {
		return
	}
	s.spawnEnemy()
	s.timer = config.SpawnInterval
}

func (s *SpawnSystem) spawnEnemy() {
	h := math.Max(1, s.fieldHeight)
	y := h*0.5 + s.rng.Jitter(config.SpawnJitter)
	e := s.store.AddEnemy(config.SpawnX, y, config.EnemyHitPoints)

	slog.Debug("enemy spawned", "id", e.ID, "y", y)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: e.ID, X: e.X, Y: e.Y},
	})
}

// Timer оставшееся время до следующего врага
func (s *SpawnSystem) Timer() float64 {
	return s.timer
}

// Reset возвращает отсчет к стартовой задержке
func (s *SpawnSystem) Reset() {
	s.timer = config.SpawnWarmup
}

// SetFieldHeight вызывается, когда хост меняет размер поля
func (s *SpawnSystem) SetFieldHeight(h float64) {
	s.fieldHeight = h
}

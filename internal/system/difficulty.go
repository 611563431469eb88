// internal/system/difficulty.go
package system

import (
	"log/slog"
	"math"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/event"
)

// BaseProfile базовые тепловые параметры новой башни
func BaseProfile() component.Thermal {
	return component.Thermal{
		Capacity:        config.BaseCapacity,
		DissipationRate: config.BaseDissipation,
		HeatPerShot:     config.BaseHeatPerShot,
		RecoveryRatio:   config.BaseRecoveryRatio,
	}
}

// DifficultyRules хранит текущий профиль, который получают новые башни.
type DifficultyRules struct {
	base    component.Thermal
	profile component.Thermal
	level   int
}

func NewDifficultyRules() *DifficultyRules {
	r := &DifficultyRules{base: BaseProfile()}
	r.Reset()
	return r
}

// Profile возвращает копию текущего профиля
func (r *DifficultyRules) Profile() component.Thermal {
	return r.profile
}

// Level число ужесточений с последнего сброса
func (r *DifficultyRules) Level() int {
	return r.level
}

// Reset возвращает базовые значения
func (r *DifficultyRules) Reset() {
	r.profile = r.base.Profile()
	r.level = 0
}

// Escalate: выстрел греет сильнее в factor раз, остывание медленнее в factor раз.
// Скорость остывания не опускается ниже config.MinDissipation, иначе перегрев стал бы вечным.
func (r *DifficultyRules) Escalate(factor float64) {
	r.profile.HeatPerShot *= factor
	r.profile.DissipationRate = math.Max(config.MinDissipation, r.profile.DissipationRate/factor)
	r.level++
}

// DifficultySystem раз в config.DifficultyInterval ужесточает профиль и
// переносит нагрев и остывание на уже построенные башни.
// Порог перегрева и восстановления у существующих башен не меняется.
type DifficultySystem struct {
	store           *entity.Store
	rules           *DifficultyRules
	eventDispatcher *event.Dispatcher
	timer           float64
}

func NewDifficultySystem(store *entity.Store, rules *DifficultyRules, eventDispatcher *event.Dispatcher) *DifficultySystem {
	return &DifficultySystem{
		store:           store,
		rules:           rules,
		eventDispatcher: eventDispatcher,
		timer:           config.DifficultyInterval,
	}
}

func (s *DifficultySystem) Update(deltaTime float64) {
	s.timer -= deltaTime
	if s.timer > 0 {
		return
	}
	s.rules.Escalate(config.DifficultyFactor)
	profile := s.rules.Profile()
	for _, t := range s.store.Towers {
		t.Thermal.HeatPerShot = profile.HeatPerShot
		t.Thermal.DissipationRate = profile.DissipationRate
	}
	s.timer = config.DifficultyInterval

	slog.Debug("difficulty escalated",
		"level", s.rules.Level(),
		"heat_per_shot", profile.HeatPerShot,
		"dissipation", profile.DissipationRate)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DifficultyEscalated,
		Data: event.DifficultyData{
			Level:           s.rules.Level(),
			HeatPerShot:     profile.HeatPerShot,
			DissipationRate: profile.DissipationRate,
		},
	})
}

// Timer оставшееся время до следующего ужесточения
func (s *DifficultySystem) Timer() float64 {
	return s.timer
}

// Reset перезапускает отсчет
func (s *DifficultySystem) Reset() {
	s.timer = config.DifficultyInterval
}

// internal/system/combat.go
package system

import (
	"log/slog"

	"thermal-td/internal/entity"
	"thermal-td/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{store: store, eventDispatcher: eventDispatcher}
}

// Update охлаждает каждую башню и дает ей не больше одного выстрела за тик.
// Цель: первый живой враг в радиусе по порядку появления. Убитые враги
// убираются из хранилища после обхода всех башен.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, t := range s.store.Towers {
		CoolThermal(&t.Thermal, deltaTime)
		if !CanFire(&t.Thermal) {
			continue
		}

		target, ok := s.store.FirstEnemyWithin(t.X, t.Y, t.Range)
		if !ok {
			continue
		}
		FireThermal(&t.Thermal)
		target.Health--
		if !target.Alive() {
			slog.Debug("enemy killed", "id", target.ID)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyData{ID: target.ID, X: target.X, Y: target.Y},
			})
		}
	}
	s.store.RemoveDeadEnemies()
}

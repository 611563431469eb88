// internal/system/movement.go
package system

import (
	"math"

	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/utils"
)

// MovementSystem двигает врагов слева направо. По вертикали враг тянется
// к средней линии и уходит от башен, в радиус которых попал.
// Уклонение не мешает башням стрелять, это только давление на игрока.
type MovementSystem struct {
	store       *entity.Store
	fieldHeight float64
}

func NewMovementSystem(store *entity.Store, fieldHeight float64) *MovementSystem {
	return &MovementSystem{store: store, fieldHeight: fieldHeight}
}

func (s *MovementSystem) Update(deltaTime float64) {
	mid := s.fieldHeight * 0.5
	for _, e := range s.store.Enemies {
		e.X += config.EnemySpeed * deltaTime

		bias := (mid - e.Y) * config.CenterPull * deltaTime
		for _, t := range s.store.Towers {
			d := utils.Distance(e.X, e.Y, t.X, t.Y)
			if d >= t.Range {
				continue
			}
			// Минимальная дистанция защищает от деления на ноль, когда враг в центре башни
			away := (e.Y - t.Y) / math.Max(config.AvoidMinDist, d)
			bias += utils.Clamp(away, -1, 1) * config.AvoidStrength * deltaTime
		}
		e.Y += bias
	}
}

// SetFieldHeight вызывается, когда хост меняет размер поля
func (s *MovementSystem) SetFieldHeight(h float64) {
	s.fieldHeight = h
}

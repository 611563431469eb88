// internal/entity/store.go
package entity

import (
	"thermal-td/internal/component"
	"thermal-td/internal/utils"
)

// Store хранит врагов и башни в порядке добавления.
// Порядок важен: башня бьет первого подходящего врага, а не ближайшего.
type Store struct {
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	nextEnemyID uint64
}

func NewStore() *Store {
	return &Store{nextEnemyID: 1}
}

// AddEnemy создает врага в указанной точке
func (s *Store) AddEnemy(x, y float64, health int) *component.Enemy {
	e := &component.Enemy{ID: s.nextEnemyID, X: x, Y: y, Health: health}
	s.nextEnemyID++
	s.Enemies = append(s.Enemies, e)
	return e
}

// AddTower добавляет башню в конец списка
func (s *Store) AddTower(t *component.Tower) {
	s.Towers = append(s.Towers, t)
}

// FirstEnemyWithin ищет первого живого врага на расстоянии не больше radius.
func (s *Store) FirstEnemyWithin(x, y, radius float64) (*component.Enemy, bool) {
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		if utils.Distance(e.X, e.Y, x, y) <= radius {
			return e, true
		}
	}
	return nil, false
}

// TowerIndexWithin возвращает индекс первой по порядку башни, центр которой
// не дальше radius от точки, или -1.
func (s *Store) TowerIndexWithin(x, y, radius float64) int {
	for i, t := range s.Towers {
		if utils.Distance(t.X, t.Y, x, y) <= radius {
			return i
		}
	}
	return -1
}

// TowerCloserThan сообщает, есть ли башня строго ближе minDist к точке.
func (s *Store) TowerCloserThan(x, y, minDist float64) bool {
	for _, t := range s.Towers {
		if utils.Distance(t.X, t.Y, x, y) < minDist {
			return true
		}
	}
	return false
}

// RemoveDeadEnemies удаляет убитых врагов одним проходом после обхода,
// сохраняя порядок оставшихся. Возвращает число удаленных.
func (s *Store) RemoveDeadEnemies() int {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	removed := len(s.Enemies) - len(kept)
	for i := len(kept); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = kept
	return removed
}

// ClearEnemies удаляет всех врагов (прорыв или рестарт)
func (s *Store) ClearEnemies() {
	s.Enemies = nil
}

// Clear очищает хранилище полностью. Счетчик ID не сбрасывается,
// чтобы логи разных сессий не путались.
func (s *Store) Clear() {
	s.Enemies = nil
	s.Towers = nil
}

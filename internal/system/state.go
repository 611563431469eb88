// internal/system/state.go
package system

import (
	"log/slog"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/event"
)

// StateSystem следит за прорывом врагов. Поражение необратимо до рестарта:
// враги очищаются, башни остаются на месте.
type StateSystem struct {
	store           *entity.Store
	session         *component.SessionState
	eventDispatcher *event.Dispatcher
	fieldWidth      float64
}

func NewStateSystem(store *entity.Store, session *component.SessionState, eventDispatcher *event.Dispatcher, fieldWidth float64) *StateSystem {
	return &StateSystem{
		store:           store,
		session:         session,
		eventDispatcher: eventDispatcher,
		fieldWidth:      fieldWidth,
	}
}

// CheckBreach переводит сессию в поражение, если хоть один враг ушел за правый край.
// Возвращает true, если поражение наступило в этом вызове.
func (s *StateSystem) CheckBreach() bool {
	if s.session.Lost {
		return false
	}
	limit := s.fieldWidth + config.ExitMargin
	for _, e := range s.store.Enemies {
		if e.X >= limit {
			s.SwitchToLost()
			return true
		}
	}
	return false
}

func (s *StateSystem) SwitchToLost() {
	s.session.Lost = true
	s.store.ClearEnemies()
	slog.Info("session lost", "elapsed", s.session.Elapsed, "towers", len(s.store.Towers))
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionLost})
}

// Reset возвращает сессию в начальное состояние
func (s *StateSystem) Reset() {
	*s.session = component.SessionState{}
}

// SetFieldWidth вызывается, когда хост меняет размер поля
func (s *StateSystem) SetFieldWidth(w float64) {
	s.fieldWidth = w
}

// internal/system/visual_effect.go
package system

import (
	"math"

	"thermal-td/internal/config"
	"thermal-td/internal/entity"
)

// VisualEffectSystem гасит подсветку башен после осмотра.
type VisualEffectSystem struct {
	store *entity.Store
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(store *entity.Store) *VisualEffectSystem {
	return &VisualEffectSystem{store: store}
}

// Update линейно уменьшает подсветку всех башен, не ниже нуля.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, t := range s.store.Towers {
		t.Highlight = math.Max(0, t.Highlight-deltaTime*config.HighlightDecay)
	}
}

// internal/app/tower_management.go
package app

import (
	"log/slog"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
	"thermal-td/internal/event"
)

// PlaceTower пытается поставить башню в точку (x, y).
// Новая башня получает копию текущего профиля сложности.
func (g *Game) PlaceTower(x, y float64) bool {
	if !g.canPlaceTower(x, y) {
		slog.Debug("tower placement rejected", "x", x, "y", y, "towers", len(g.Store.Towers))
		return false
	}

	t := &component.Tower{
		X:       x,
		Y:       y,
		Range:   config.TowerRange,
		Thermal: g.Rules.Profile().Profile(),
	}
	g.Store.AddTower(t)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{Index: len(g.Store.Towers) - 1, X: x, Y: y},
	})
	return true
}

func (g *Game) canPlaceTower(x, y float64) bool {
	if len(g.Store.Towers) >= config.MaxTowers {
		return false
	}
	return !g.Store.TowerCloserThan(x, y, config.MinTowerSeparation)
}

// InspectTower подсвечивает первую по порядку башню рядом с точкой.
// Среди перекрывающихся башен выигрывает более старая, а не ближайшая.
func (g *Game) InspectTower(x, y float64) bool {
	i := g.Store.TowerIndexWithin(x, y, config.PickRadius)
	if i < 0 {
		return false
	}
	t := g.Store.Towers[i]
	t.Highlight = 1
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerInspected,
		Data: event.TowerData{Index: i, X: t.X, Y: t.Y},
	})
	return true
}

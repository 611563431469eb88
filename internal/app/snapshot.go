// internal/app/snapshot.go
package app

import "thermal-td/internal/system"

// TowerView данные башни для отрисовки
type TowerView struct {
	X, Y       float64
	Radius     float64
	HeatRatio  float64 // heat/capacity в [0, 1]
	Overheated bool
	Highlight  float64
}

// EnemyView данные врага для отрисовки
type EnemyView struct {
	X, Y float64
}

// Snapshot копия состояния между тиками. Рендер читает только ее,
// поэтому все поля относятся к одному и тому же тику.
type Snapshot struct {
	Width, Height   float64
	Towers          []TowerView
	Enemies         []EnemyView
	Lost            bool
	Elapsed         float64
	DifficultyLevel int
}

func (g *Game) BuildSnapshot() Snapshot {
	towers := make([]TowerView, len(g.Store.Towers))
	for i, t := range g.Store.Towers {
		towers[i] = TowerView{
			X:          t.X,
			Y:          t.Y,
			Radius:     t.Range,
			HeatRatio:  system.HeatRatio(&t.Thermal),
			Overheated: t.Thermal.Overheated,
			Highlight:  t.Highlight,
		}
	}

	enemies := make([]EnemyView, len(g.Store.Enemies))
	for i, e := range g.Store.Enemies {
		enemies[i] = EnemyView{X: e.X, Y: e.Y}
	}

	return Snapshot{
		Width:           g.Width,
		Height:          g.Height,
		Towers:          towers,
		Enemies:         enemies,
		Lost:            g.Session.Lost,
		Elapsed:         g.Session.Elapsed,
		DifficultyLevel: g.Rules.Level(),
	}
}

// internal/component/combat.go
package component

// Thermal тепловое состояние башни. Заменяет боезапас и перезарядку:
// каждый выстрел греет башню, перегретая башня не стреляет.
type Thermal struct {
	Heat            float64
	Capacity        float64 // порог перегрева
	DissipationRate float64 // тепла в секунду
	HeatPerShot     float64
	RecoveryRatio   float64 // доля Capacity, ниже которой перегрев снимается
	Overheated      bool
}

// RecoveryThreshold уровень тепла, при котором перегрев снимается.
func (t Thermal) RecoveryThreshold() float64 {
	return t.Capacity * t.RecoveryRatio
}

// Profile возвращает копию параметров без текущего тепла и флага перегрева.
func (t Thermal) Profile() Thermal {
	return Thermal{
		Capacity:        t.Capacity,
		DissipationRate: t.DissipationRate,
		HeatPerShot:     t.HeatPerShot,
		RecoveryRatio:   t.RecoveryRatio,
	}
}

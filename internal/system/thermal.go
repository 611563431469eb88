// internal/system/thermal.go
package system

import (
	"thermal-td/internal/component"
	"thermal-td/internal/utils"
)

// CoolThermal рассеивает тепло за dt и снимает перегрев, если тепло
// опустилось до порога восстановления. Тепло не уходит ниже нуля.
func CoolThermal(t *component.Thermal, dt float64) {
	t.Heat -= t.DissipationRate * dt
	if t.Heat < 0 {
		t.Heat = 0
	}
	if t.Overheated && t.Heat <= t.RecoveryThreshold() {
		t.Overheated = false
	}
}

// CanFire сообщает, может ли башня стрелять
func CanFire(t *component.Thermal) bool {
	return !t.Overheated
}

// FireThermal добавляет тепло выстрела. Перегретая башня не стреляет,
// поэтому вызов для нее ничего не меняет и возвращает false.
func FireThermal(t *component.Thermal) bool {
	if t.Overheated {
		return false
	}
	t.Heat += t.HeatPerShot
	if t.Heat >= t.Capacity {
		t.Overheated = true
	}
	return true
}

// HeatRatio доля заполнения в [0, 1] для отрисовки
func HeatRatio(t *component.Thermal) float64 {
	if t.Capacity <= 0 {
		return 1
	}
	return utils.Clamp(t.Heat/t.Capacity, 0, 1)
}

// HeatSample одна точка кривой нагрева
type HeatSample struct {
	Time       float64
	Heat       float64
	Overheated bool
	Fired      bool
}

// SimulateHeatCurve прогоняет одну башню по расписанию выстрелов:
// на каждом шаге охлаждение за dt, затем выстрел, если он запланирован и разрешен.
// Используется для подбора баланса (cmd/heatcurve) и в тестах.
func SimulateHeatCurve(timeline []bool, dt float64, profile component.Thermal) []HeatSample {
	state := profile.Profile()
	out := make([]HeatSample, 0, len(timeline))
	for i, wantFire := range timeline {
		CoolThermal(&state, dt)
		fired := false
		if wantFire && CanFire(&state) {
			fired = FireThermal(&state)
		}
		out = append(out, HeatSample{
			Time:       float64(i+1) * dt,
			Heat:       state.Heat,
			Overheated: state.Overheated,
			Fired:      fired,
		})
	}
	return out
}

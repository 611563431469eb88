package system

import (
	"testing"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
)

func TestCoolThermalNeverNegative(t *testing.T) {
	for _, dt := range []float64{0.001, 0.016, 0.033, config.MaxDeltaTime} {
		th := BaseProfile()
		th.Heat = 0.3
		for i := 0; i < 50; i++ {
			CoolThermal(&th, dt)
			if th.Heat < 0 {
				t.Fatalf("dt=%.3f step %d: heat went negative: %v", dt, i, th.Heat)
			}
		}
		if th.Heat != 0 {
			t.Fatalf("dt=%.3f: heat should settle at 0, got %v", dt, th.Heat)
		}
	}
}

func TestFireThermalOverheatsAtCapacity(t *testing.T) {
	th := BaseProfile()
	shots := 0
	for !th.Overheated {
		if !FireThermal(&th) {
			t.Fatal("tower refused to fire before overheating")
		}
		shots++
		if !th.Overheated && th.Heat >= th.Capacity {
			t.Fatalf("heat %.1f reached capacity without overheating", th.Heat)
		}
	}
	// 18 * 6 = 108 >= 100
	if shots != 6 {
		t.Fatalf("shots to overheat: got %d want 6", shots)
	}
	if FireThermal(&th) {
		t.Fatal("overheated tower must not fire")
	}
	if th.Heat != 108 {
		t.Fatalf("refused shot changed heat: got %v want 108", th.Heat)
	}
}

func TestOverheatHysteresis(t *testing.T) {
	th := BaseProfile()
	for !th.Overheated {
		FireThermal(&th)
	}

	threshold := th.RecoveryThreshold()
	for i := 0; i < 1000 && th.Overheated; i++ {
		CoolThermal(&th, 0.05)
		if th.Overheated && th.Heat <= threshold {
			t.Fatalf("step %d: still overheated at heat %.2f <= threshold %.2f", i, th.Heat, threshold)
		}
		// Между порогами башня остается перегретой
		if th.Heat < th.Capacity && th.Heat > threshold && !th.Overheated {
			t.Fatalf("step %d: overheat cleared inside hysteresis band at heat %.2f", i, th.Heat)
		}
	}
	if th.Overheated {
		t.Fatal("tower never recovered")
	}
	if th.Heat > threshold {
		t.Fatalf("recovered above threshold: heat %.2f threshold %.2f", th.Heat, threshold)
	}
}

func TestOverheatHysteresisWithChangingParameters(t *testing.T) {
	th := BaseProfile()
	for !th.Overheated {
		FireThermal(&th)
	}

	rules := NewDifficultyRules()
	for i := 0; i < 400; i++ {
		// Параметры меняются на лету: инвариант должен держаться для текущих значений
		if i%20 == 0 {
			rules.Escalate(config.DifficultyFactor)
			p := rules.Profile()
			th.HeatPerShot = p.HeatPerShot
			th.DissipationRate = p.DissipationRate
			th.Capacity += 5
			th.RecoveryRatio = 0.3 + float64(i%40)/100
		}
		wasOverheated := th.Overheated
		CoolThermal(&th, 0.05)
		if th.Overheated && th.Heat <= th.RecoveryThreshold() {
			t.Fatalf("step %d: overheated below recovery threshold", i)
		}
		if !wasOverheated && th.Overheated {
			t.Fatalf("step %d: cooling must never set overheat", i)
		}
		FireThermal(&th)
		if !wasOverheated && th.Overheated && th.Heat < th.Capacity {
			t.Fatalf("step %d: overheated below capacity", i)
		}
	}
}

func TestSimulateHeatCurveOverheatAndRecovery(t *testing.T) {
	timeline := make([]bool, 0, 33)
	for i := 0; i < 8; i++ {
		timeline = append(timeline, true)
	}
	for i := 0; i < 25; i++ {
		timeline = append(timeline, false)
	}

	base := BaseProfile()
	curve := SimulateHeatCurve(timeline, 0.2, base)
	if len(curve) != len(timeline) {
		t.Fatalf("curve length: got %d want %d", len(curve), len(timeline))
	}

	overheated := false
	for _, s := range curve {
		if s.Overheated {
			overheated = true
		}
	}
	if !overheated {
		t.Fatal("tower should overheat under sustained fire")
	}
	last := curve[len(curve)-1]
	if last.Overheated {
		t.Fatal("tower should recover after cooling")
	}
	if last.Heat > base.RecoveryThreshold() {
		t.Fatalf("final heat %.2f above recovery threshold %.2f", last.Heat, base.RecoveryThreshold())
	}
	// Шаг 8 по расписанию стреляет, но башня уже перегрета
	if curve[7].Fired {
		t.Fatal("overheated tower fired in the heat curve")
	}
}

func TestSimulateHeatCurveIgnoresProfileHeat(t *testing.T) {
	p := BaseProfile()
	p.Heat = 500
	p.Overheated = true
	curve := SimulateHeatCurve([]bool{true}, 0.1, p)
	if !curve[0].Fired || curve[0].Heat != p.HeatPerShot {
		t.Fatalf("curve should start cold: got %+v", curve[0])
	}
}

func TestHeatRatioClamped(t *testing.T) {
	th := component.Thermal{Heat: 150, Capacity: 100}
	if got := HeatRatio(&th); got != 1 {
		t.Fatalf("ratio above capacity: got %v want 1", got)
	}
	th.Heat = 25
	if got := HeatRatio(&th); got != 0.25 {
		t.Fatalf("ratio: got %v want 0.25", got)
	}
}

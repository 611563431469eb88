package system

import (
	"math"
	"testing"

	"thermal-td/internal/component"
	"thermal-td/internal/config"
	"thermal-td/internal/entity"
	"thermal-td/internal/event"
)

func TestEscalateIsMonotonic(t *testing.T) {
	rules := NewDifficultyRules()
	prev := rules.Profile()
	for i := 0; i < 30; i++ {
		rules.Escalate(config.DifficultyFactor)
		cur := rules.Profile()
		if cur.HeatPerShot <= prev.HeatPerShot {
			t.Fatalf("step %d: heat per shot did not grow: %v -> %v", i, prev.HeatPerShot, cur.HeatPerShot)
		}
		if cur.DissipationRate >= prev.DissipationRate {
			t.Fatalf("step %d: dissipation did not shrink: %v -> %v", i, prev.DissipationRate, cur.DissipationRate)
		}
		if cur.Capacity != prev.Capacity || cur.RecoveryRatio != prev.RecoveryRatio {
			t.Fatalf("step %d: capacity or recovery ratio changed", i)
		}
		prev = cur
	}
}

func TestEscalateFirstStepValues(t *testing.T) {
	rules := NewDifficultyRules()
	rules.Escalate(1.08)
	p := rules.Profile()
	if math.Abs(p.HeatPerShot-18*1.08) > 1e-9 {
		t.Fatalf("heat per shot: got %v want %v", p.HeatPerShot, 18*1.08)
	}
	if math.Abs(p.DissipationRate-14/1.08) > 1e-9 {
		t.Fatalf("dissipation: got %v want %v", p.DissipationRate, 14/1.08)
	}
	if rules.Level() != 1 {
		t.Fatalf("level: got %d want 1", rules.Level())
	}
}

func TestEscalateDissipationFloor(t *testing.T) {
	rules := NewDifficultyRules()
	for i := 0; i < 200; i++ {
		rules.Escalate(2)
	}
	if got := rules.Profile().DissipationRate; got != config.MinDissipation {
		t.Fatalf("dissipation floor: got %v want %v", got, config.MinDissipation)
	}
}

func TestDifficultyRulesReset(t *testing.T) {
	rules := NewDifficultyRules()
	rules.Escalate(1.5)
	rules.Escalate(1.5)
	rules.Reset()
	if rules.Profile() != BaseProfile() {
		t.Fatalf("reset profile: got %+v want %+v", rules.Profile(), BaseProfile())
	}
	if rules.Level() != 0 {
		t.Fatalf("reset level: got %d want 0", rules.Level())
	}
}

func TestDifficultySystemPropagatesToExistingTowers(t *testing.T) {
	store := entity.NewStore()
	rules := NewDifficultyRules()
	dispatcher := event.NewDispatcher()

	var got []event.DifficultyData
	dispatcher.Subscribe(event.DifficultyEscalated, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.DifficultyData))
	}))

	tower := &component.Tower{X: 100, Y: 100, Range: config.TowerRange, Thermal: rules.Profile()}
	tower.Thermal.Capacity = 120 // своя емкость не должна перезаписаться
	tower.Thermal.RecoveryRatio = 0.5
	tower.Thermal.Heat = 40
	store.AddTower(tower)

	sys := NewDifficultySystem(store, rules, dispatcher)
	sys.Update(config.DifficultyInterval - 1)
	if len(got) != 0 {
		t.Fatal("escalated before the interval elapsed")
	}
	sys.Update(1)
	if len(got) != 1 {
		t.Fatalf("escalations: got %d want 1", len(got))
	}

	p := rules.Profile()
	if tower.Thermal.HeatPerShot != p.HeatPerShot || tower.Thermal.DissipationRate != p.DissipationRate {
		t.Fatalf("tower did not inherit escalation: %+v vs profile %+v", tower.Thermal, p)
	}
	if tower.Thermal.Capacity != 120 || tower.Thermal.RecoveryRatio != 0.5 {
		t.Fatalf("capacity/recovery must stay per tower: %+v", tower.Thermal)
	}
	if tower.Thermal.Heat != 40 {
		t.Fatalf("escalation touched current heat: %v", tower.Thermal.Heat)
	}
	if sys.Timer() != config.DifficultyInterval {
		t.Fatalf("timer not re-armed: %v", sys.Timer())
	}
	if got[0].Level != 1 || got[0].HeatPerShot != p.HeatPerShot {
		t.Fatalf("event payload: %+v", got[0])
	}
}

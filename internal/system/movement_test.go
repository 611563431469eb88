package system

import (
	"math"
	"testing"

	"thermal-td/internal/config"
	"thermal-td/internal/entity"
)

func TestMovementAdvancesAndPullsToMidline(t *testing.T) {
	store := entity.NewStore()
	e := store.AddEnemy(0, 100, 1)
	NewMovementSystem(store, 400).Update(0.05)

	if math.Abs(e.X-config.EnemySpeed*0.05) > 1e-9 {
		t.Fatalf("x: got %v want %v", e.X, config.EnemySpeed*0.05)
	}
	wantY := 100 + (200-100)*config.CenterPull*0.05
	if math.Abs(e.Y-wantY) > 1e-9 {
		t.Fatalf("y: got %v want %v", e.Y, wantY)
	}
}

func TestMovementAvoidanceClampedToUnit(t *testing.T) {
	store := entity.NewStore()
	// Враг на средней линии, башня прямо под ним: притяжения нет, отталкивание -1
	e := store.AddEnemy(100, 200, 1)
	store.AddTower(newTower(100+config.EnemySpeed*0.05, 300))
	NewMovementSystem(store, 400).Update(0.05)

	want := 200 - config.AvoidStrength*0.05
	if math.Abs(e.Y-want) > 1e-6 {
		t.Fatalf("y: got %v want %v", e.Y, want)
	}
}

func TestMovementAvoidanceAccumulates(t *testing.T) {
	store := entity.NewStore()
	e := store.AddEnemy(100, 200, 1)
	store.AddTower(newTower(100, 350))
	store.AddTower(newTower(110, 340))
	NewMovementSystem(store, 400).Update(0.05)

	if e.Y >= 200-config.AvoidStrength*0.05 {
		t.Fatalf("two towers should push harder than one: y %v", e.Y)
	}
	if e.Y < 200-2*config.AvoidStrength*0.05 {
		t.Fatalf("push exceeds two unit biases: y %v", e.Y)
	}
}

func TestMovementTowerLevelWithEnemyIsFinite(t *testing.T) {
	store := entity.NewStore()
	e := store.AddEnemy(100, 200, 1)
	// Башня почти в той же точке, где окажется враг после шага
	store.AddTower(newTower(100+config.EnemySpeed*0.016, 200.0000001))
	NewMovementSystem(store, 400).Update(0.016)

	if math.IsNaN(e.Y) || math.IsInf(e.Y, 0) {
		t.Fatalf("y is not finite: %v", e.Y)
	}
	if math.Abs(e.Y-200) > config.AvoidStrength*0.016 {
		t.Fatalf("repulsion not bounded: moved %v", e.Y-200)
	}
}

func TestMovementIgnoresTowersOutOfRange(t *testing.T) {
	store := entity.NewStore()
	e := store.AddEnemy(0, 200, 1)
	store.AddTower(newTower(0, 200+config.TowerRange+50))
	NewMovementSystem(store, 400).Update(0.05)

	if e.Y != 200 {
		t.Fatalf("tower out of range pushed the enemy: y %v", e.Y)
	}
}

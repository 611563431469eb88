// internal/config/config.go
package config

import "image/color"

// Игровые константы. Не настраиваются снаружи, но вынесены сюда для тестов.
const (
	MaxDeltaTime = 0.05 // секунды, верхняя граница шага симуляции
	FrameTarget  = 16   // миллисекунды между тиками (~60 Гц)

	SpawnInterval = 1.4 // секунды между врагами
	SpawnWarmup   = 0.2 // задержка первого врага после старта/рестарта
	SpawnX        = -20.0
	SpawnJitter   = 120.0 // разброс по Y вокруг середины поля
	ExitMargin    = 20.0  // враг за ширина+отступ считается прорвавшимся

	EnemySpeed     = 120.0 // пикселей в секунду
	EnemyHitPoints = 1
	CenterPull     = 0.25 // притяжение к средней линии поля
	AvoidStrength  = 95.0 // сила отталкивания от башни
	AvoidMinDist   = 1.0

	DifficultyInterval = 20.0
	DifficultyFactor   = 1.08
	MinDissipation     = 0.1

	MaxTowers          = 5
	MinTowerSeparation = 80.0
	TowerRange         = 180.0 // радиус поражения
	PickRadius         = 42.0
	HighlightDecay     = 2.2 // единиц подсветки в секунду

	LongPressMillis = 400
	TwoFingerWindow = 0.18 // секунды

	BaseCapacity      = 100.0
	BaseDissipation   = 14.0
	BaseHeatPerShot   = 18.0
	BaseRecoveryRatio = 0.45
)

// Размеры для отрисовки, к логике не относятся.
const (
	TowerBodyRadius      = 28.0
	TowerHighlightRadius = 38.0
	EnemyHalfWidth       = 13.0
	EnemyTop             = 14.0
	EnemyBottom          = 11.0
	RingStrokeWidth      = 3.0
)

var (
	BackgroundColor  = color.RGBA{17, 24, 39, 255}
	EnemyColor       = color.RGBA{248, 250, 252, 255}
	RangeRingColor   = color.RGBA{160, 160, 180, 60}
	OverheatedColor  = color.RGBA{255, 51, 25, 255}
	LostOverlayColor = color.RGBA{0, 0, 0, 140}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
)

package event

const (
	EnemySpawned        EventType = "EnemySpawned"
	EnemyKilled         EventType = "EnemyKilled"         // Враг уничтожен башней
	TowerPlaced         EventType = "TowerPlaced"         // Башня построена
	TowerInspected      EventType = "TowerInspected"      // Долгое нажатие по башне
	DifficultyEscalated EventType = "DifficultyEscalated" // Профиль нагрева ужесточен
	SessionLost         EventType = "SessionLost"
	SessionRestarted    EventType = "SessionRestarted"
)

// EnemyData передается с EnemySpawned и EnemyKilled
type EnemyData struct {
	ID   uint64
	X, Y float64
}

// TowerData передается с TowerPlaced и TowerInspected
type TowerData struct {
	Index int // позиция башни в хранилище
	X, Y  float64
}

// DifficultyData передается с DifficultyEscalated
type DifficultyData struct {
	Level           int
	HeatPerShot     float64
	DissipationRate float64
}

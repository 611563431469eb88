package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     uint64 // только для логов, порядок в хранилище важнее
	X, Y   float64
	Health int
}

// Alive сообщает, остались ли у врага очки здоровья.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

package component

// SessionState флаг поражения и время текущей сессии
type SessionState struct {
	Lost    bool
	Elapsed float64 // секунды игрового времени, пока сессия не проиграна
}

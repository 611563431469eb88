// internal/utils/clock.go
package utils

import "time"

// Clock источник монотонного времени. В тестах подменяется фейком.
type Clock interface {
	Now() time.Time
}

// SystemClock использует time.Now (монотонная часть сохраняется).
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameTimer считает дельту между кадрами и ограничивает ее сверху,
// чтобы подвисание планировщика не ломало симуляцию.
type FrameTimer struct {
	clock    Clock
	last     time.Time
	maxDelta float64
	start    time.Time
}

func NewFrameTimer(clock Clock, maxDelta float64) *FrameTimer {
	now := clock.Now()
	return &FrameTimer{clock: clock, last: now, start: now, maxDelta: maxDelta}
}

// Delta возвращает прошедшее с прошлого вызова время в секундах, в пределах [0, maxDelta].
func (t *FrameTimer) Delta() float64 {
	now := t.clock.Now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return Clamp(dt, 0, t.maxDelta)
}

// Since возвращает время с момента создания таймера. Используется как метка для событий касания.
func (t *FrameTimer) Since() time.Duration {
	return t.clock.Now().Sub(t.start)
}

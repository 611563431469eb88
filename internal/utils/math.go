// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

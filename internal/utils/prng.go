// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService обертка над стандартным генератором случайных чисел,
// чтобы спавн врагов можно было воспроизвести по сиду.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает сид, с которым был создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter возвращает случайное смещение в диапазоне [-amplitude, amplitude).
func (s *PRNGService) Jitter(amplitude float64) float64 {
	return s.rng.Float64()*2*amplitude - amplitude
}

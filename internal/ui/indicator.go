// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"thermal-td/internal/config"
	"thermal-td/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GestureIndicator маленький кружок в углу: показывает состояние распознавателя
// жестов. Во время окна двух пальцев пульсирует, подсказывая рестарт.
type GestureIndicator struct {
	X, Y   float32
	Radius float32
}

func NewGestureIndicator(x, y, radius float32) *GestureIndicator {
	return &GestureIndicator{X: x, Y: y, Radius: radius}
}

var (
	idleColor    = color.RGBA{70, 130, 180, 220}
	pressedColor = color.RGBA{194, 178, 128, 255}
	armedColor   = color.RGBA{220, 60, 60, 220}
)

// Draw отрисовывает индикатор
func (i *GestureIndicator) Draw(screen *ebiten.Image, state input.GestureState) {
	c := idleColor
	r := i.Radius
	switch state.Kind {
	case input.StatePressed:
		c = pressedColor
	case input.StateArmed:
		c = armedColor
		r = i.Radius * float32(1.0+0.3*math.Max(0, state.WindowRemaining)/config.TwoFingerWindow)
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

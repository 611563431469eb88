// internal/state/touch.go
package state

import (
	"time"

	"thermal-td/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointerID указатель мыши, чтобы на десктопе можно было тапать курсором
const mousePointerID = -1

type touchPos struct {
	x, y float64
}

// TouchReader переводит состояние ввода ebiten в поток input.Event.
// Касания и левая кнопка мыши идут как независимые указатели.
type TouchReader struct {
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
	active   []ebiten.TouchID
	lastPos  map[ebiten.TouchID]touchPos
	down     int // сколько указателей сейчас нажато, для выбора фазы
	mouse    touchPos
	events   []input.Event
}

func NewTouchReader() *TouchReader {
	return &TouchReader{lastPos: make(map[ebiten.TouchID]touchPos)}
}

// Poll возвращает события за текущий кадр. Нажатия идут раньше отпусканий,
// чтобы короткий тап внутри одного кадра не потерялся.
func (r *TouchReader) Poll(at time.Duration) []input.Event {
	r.events = r.events[:0]

	r.active = ebiten.AppendTouchIDs(r.active[:0])
	for _, id := range r.active {
		x, y := ebiten.TouchPosition(id)
		r.lastPos[id] = touchPos{float64(x), float64(y)}
	}

	r.pressed = inpututil.AppendJustPressedTouchIDs(r.pressed[:0])
	for _, id := range r.pressed {
		p := r.lastPos[id]
		r.press(int(id), p, at)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.mouse = cursor()
		r.press(mousePointerID, r.mouse, at)
	}

	r.released = inpututil.AppendJustReleasedTouchIDs(r.released[:0])
	for _, id := range r.released {
		p := r.lastPos[id]
		delete(r.lastPos, id)
		r.release(int(id), p, at)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.mouse = cursor()
		r.release(mousePointerID, r.mouse, at)
	}
	return r.events
}

func (r *TouchReader) press(id int, p touchPos, at time.Duration) {
	phase := input.PhaseDown
	if r.down > 0 {
		phase = input.PhasePointerDown
	}
	r.down++
	r.events = append(r.events, input.Event{PointerID: id, Phase: phase, X: p.x, Y: p.y, At: at})
}

func (r *TouchReader) release(id int, p touchPos, at time.Duration) {
	if r.down > 0 {
		r.down--
	}
	phase := input.PhaseUp
	if r.down > 0 {
		phase = input.PhasePointerUp
	}
	r.events = append(r.events, input.Event{PointerID: id, Phase: phase, X: p.x, Y: p.y, At: at})
}

func cursor() touchPos {
	x, y := ebiten.CursorPosition()
	return touchPos{float64(x), float64(y)}
}

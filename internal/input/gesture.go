// internal/input/gesture.go
package input

import (
	"time"

	"thermal-td/internal/config"
)

// Phase фаза события касания, как ее отдает сенсорный экран
type Phase int

const (
	PhaseDown        Phase = iota // первый палец
	PhasePointerDown              // дополнительный палец
	PhaseUp                       // последний палец
	PhasePointerUp                // один из нескольких пальцев
	PhaseCancel
	PhaseMove
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhasePointerDown:
		return "pointer_down"
	case PhaseUp:
		return "up"
	case PhasePointerUp:
		return "pointer_up"
	case PhaseCancel:
		return "cancel"
	case PhaseMove:
		return "move"
	}
	return "unknown"
}

func (p Phase) isPress() bool   { return p == PhaseDown || p == PhasePointerDown }
func (p Phase) isRelease() bool { return p == PhaseUp || p == PhasePointerUp || p == PhaseCancel }

// Event сырое событие касания
type Event struct {
	PointerID int
	Phase     Phase
	X, Y      float64
	At        time.Duration // монотонная метка времени
}

// CommandKind результат распознавания жеста
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandPlace
	CommandInspect
	CommandRestart
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlace:
		return "place"
	case CommandInspect:
		return "inspect"
	case CommandRestart:
		return "restart"
	}
	return "none"
}

// Command дискретная игровая команда. Координаты заданы для place и inspect.
type Command struct {
	Kind CommandKind
	X, Y float64
}

// StateKind вид состояния распознавателя
type StateKind int

const (
	StateIdle    StateKind = iota // ни одного пальца
	StatePressed                  // палец(ы) на экране, окно двух пальцев не взведено
	StateArmed                    // второй палец пришел недавно: отпускание значит рестарт
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateArmed:
		return "armed"
	}
	return "unknown"
}

// GestureState снимок состояния. WindowRemaining имеет смысл только для StateArmed.
type GestureState struct {
	Kind            StateKind
	Active          int
	WindowRemaining float64
}

// windowDisarmed значение окна, когда оно не взведено. Окно активно, пока >= 0.
const windowDisarmed = -1.0

// Classifier превращает поток касаний в команды. Команды возникают только на
// отпускании; нажатие лишь обновляет учет пальцев.
type Classifier struct {
	active    int
	downAt    map[int]time.Duration
	stale     map[int]struct{} // пальцы, оставшиеся на экране во время Reset
	window    float64
	longPress time.Duration
	armFor    float64
}

func NewClassifier() *Classifier {
	return &Classifier{
		downAt:    make(map[int]time.Duration),
		stale:     make(map[int]struct{}),
		window:    windowDisarmed,
		longPress: config.LongPressMillis * time.Millisecond,
		armFor:    config.TwoFingerWindow,
	}
}

// Handle обрабатывает событие. lost влияет только на короткий тап:
// после поражения тап означает рестарт, а не постройку.
func (c *Classifier) Handle(ev Event, lost bool) Command {
	switch {
	case ev.Phase.isPress():
		c.onPress(ev)
	case ev.Phase.isRelease():
		return c.onRelease(ev, lost)
	}
	return Command{Kind: CommandNone}
}

func (c *Classifier) onPress(ev Event) {
	c.active++
	c.downAt[ev.PointerID] = ev.At
	delete(c.stale, ev.PointerID)
	if c.active >= 2 {
		c.window = c.armFor
	}
}

func (c *Classifier) onRelease(ev Event, lost bool) Command {
	if c.active > 0 {
		c.active--
	}

	// Палец пережил рестарт: его отпускание не должно ничего строить
	if _, ok := c.stale[ev.PointerID]; ok {
		delete(c.stale, ev.PointerID)
		return Command{Kind: CommandNone}
	}

	held := time.Duration(0)
	if down, ok := c.downAt[ev.PointerID]; ok {
		held = ev.At - down
		delete(c.downAt, ev.PointerID)
	}

	if c.window >= 0 {
		return Command{Kind: CommandRestart}
	}
	if held >= c.longPress {
		return Command{Kind: CommandInspect, X: ev.X, Y: ev.Y}
	}
	if lost {
		return Command{Kind: CommandRestart}
	}
	return Command{Kind: CommandPlace, X: ev.X, Y: ev.Y}
}

// Tick уменьшает окно двух пальцев. Вызывается каждый кадр, даже после поражения.
func (c *Classifier) Tick(dt float64) {
	if c.window >= 0 {
		c.window -= dt
	}
}

// Reset снимает окно двух пальцев и забывает время нажатия. Пальцы, которые
// еще на экране, помечаются устаревшими: их отпускание вернет CommandNone.
func (c *Classifier) Reset() {
	for id := range c.downAt {
		c.stale[id] = struct{}{}
	}
	clear(c.downAt)
	c.window = windowDisarmed
}

// State возвращает текущее состояние распознавателя
func (c *Classifier) State() GestureState {
	switch {
	case c.window >= 0:
		return GestureState{Kind: StateArmed, Active: c.active, WindowRemaining: c.window}
	case c.active > 0:
		return GestureState{Kind: StatePressed, Active: c.active}
	}
	return GestureState{Kind: StateIdle}
}

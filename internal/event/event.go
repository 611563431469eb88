// internal/event/event.go
package event

// EventType тип события
type EventType string

// Event структура события
type Event struct {
	Type EventType
	Data any // Данные события, если нужны
}

// Listener интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher вызывает подписчиков синхронно, в порядке подписки.
// Симуляция однопоточная, поэтому блокировок нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписка на конкретный тип события
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписка на все события (логирование, запись в тестах)
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Dispatch отправка события всем подписчикам
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.any {
		l.OnEvent(e)
	}
}

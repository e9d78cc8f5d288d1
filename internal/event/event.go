// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Time float64     // игровое время, мс
	Data interface{} // Данные события, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
// Функции несравнимы, поэтому такого подписчика нельзя передать в Unsubscribe.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий. Помимо рассылки подписчикам он копит
// события текущего тика, которые хост забирает через Drain.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
	pending   []Event
	clock     func() float64
}

// NewDispatcher — создаёт новый диспетчер. clock может быть nil.
func NewDispatcher(clock func() float64) *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
		clock:     clock,
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все события
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d.clock != nil && event.Time == 0 {
		event.Time = d.clock()
	}
	d.pending = append(d.pending, event)
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}

// Drain возвращает накопленные события и очищает очередь.
func (d *Dispatcher) Drain() []Event {
	events := d.pending
	d.pending = nil
	return events
}

// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка; тип описан у константы события
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер: Dispatch вызывает подписчиков сразу,
// в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на перечисленные типы. Повторная подписка
// на тот же тип игнорируется.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		if d.subscribed(t, listener) {
			continue
		}
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe снимает listener со всех типов событий.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for t, listeners := range d.listeners {
		kept := make([]Listener, 0, len(listeners))
		for _, l := range listeners {
			if l != listener {
				kept = append(kept, l)
			}
		}
		if len(kept) == 0 {
			delete(d.listeners, t)
			continue
		}
		d.listeners[t] = kept
	}
}

// Dispatch рассылает событие. Подписки, изменённые внутри обработчика,
// действуют со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

func (d *Dispatcher) subscribed(t EventType, listener Listener) bool {
	for _, l := range d.listeners[t] {
		if l == listener {
			return true
		}
	}
	return false
}

package game

type EventType int

const (
	EventFruitEaten EventType = iota
	EventGameOver
)

type Event struct {
	Type EventType
	Pos  Position // cell the event happened on (head position)
}

type EventHandler func(Event)

// EventBus decouples game-state transitions from effects (sound).
// Handlers run synchronously on Emit, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

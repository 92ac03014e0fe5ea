package game

// EventType identifies a discrete per-tick simulation event. Events
// are delivered synchronously during AdvanceFrame and are not buffered
// beyond the tick that produced them.
type EventType int

const (
	EventScoreDelta EventType = iota
	EventSquadSize
	EventDefeat
	EventObstacleDestroyed
	EventGateCrossed
	EventWeaponPickup
)

// Event carries the payload for one occurrence. X/Z locate the event
// in the world where that is meaningful; Amount is the score delta,
// the gate delta, or the new squad size depending on the type.
type Event struct {
	Type   EventType
	X, Z   float64
	Amount int
	Grew   bool // EventSquadSize: size went up
}

// EventHandler consumes one event.
type EventHandler func(Event)

// EventBus is a minimal synchronous subscribe/emit bus the
// presentation layer hangs UI and audio reactions on.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]EventHandler)}
}

// Subscribe registers a handler for one event type.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit delivers an event to every handler registered for its type, in
// subscription order, on the caller's goroutine.
func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

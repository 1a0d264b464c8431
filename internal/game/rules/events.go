package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	EventGameStarted    EventType = "GAME_STARTED"
	EventFigurePlaced   EventType = "FIGURE_PLACED"
	EventFigureMoved    EventType = "FIGURE_MOVED"
	EventFigureDamaged  EventType = "FIGURE_DAMAGED"
	EventFigureHealed   EventType = "FIGURE_HEALED"
	EventFigureDied     EventType = "FIGURE_DIED"
	EventFigureRevived  EventType = "FIGURE_REVIVED"
	EventFigureConjured EventType = "FIGURE_CONJURED"
	EventContainment    EventType = "CONTAINMENT_APPLIED"
	EventTurnEnded      EventType = "TURN_ENDED"
	EventGameOver       EventType = "GAME_OVER"
)

// Event describes something that happened during resolution.
type Event struct {
	Type      EventType
	FigureID  string // figure the event is about, if any
	SourceID  string // figure that caused the event, if any
	Player    Player // owning side of FigureID
	Amount    int    // numeric payload (damage, healing, turn number)
	Detail    string // human-readable description
	Timestamp time.Time
}

// Listener receives published events.
type Listener func(Event)

// EventBus provides a synchronous publish/subscribe implementation.
// Listeners run on the publishing goroutine; the engine publishes
// while resolving an action, so listeners must not call back into it.
type EventBus struct {
	mu         sync.RWMutex
	listeners  map[int]Listener
	nextHandle int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// Unsubscribe removes a listener by its handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	bus.mu.RLock()
	listeners := make([]Listener, 0, len(bus.listeners))
	for _, l := range bus.listeners {
		listeners = append(listeners, l)
	}
	bus.mu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

package keyboard

import "github.com/Cytens-Night/Musical-Keyboard/internal/music"

type EventType int

const (
	EventNotePlayed EventType = iota
	EventHarmonyNote
	EventChordPlayed
	EventScaleChanged
)

// Event describes something audible for collaborators (the visual layer,
// a status line) to react to.
type Event struct {
	Type     EventType
	Char     rune
	Class    music.KeyClass
	Note     music.Note
	Velocity float64
}

type EventHandler func(Event)

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

package events

// Event is the base interface for all game events
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// GameID returns the ID of the game this event belongs to
	GameID() string
}

// BaseEvent provides common fields for all events
type BaseEvent struct {
	EventType string `json:"type"`
	Game      string `json:"game_id"`
}

// Type implements Event interface
func (e BaseEvent) Type() string {
	return e.EventType
}

// GameID implements Event interface
func (e BaseEvent) GameID() string {
	return e.Game
}

func base(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Game: gameID}
}

// Sink is an ordered, append-only consumer of events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard is a Sink that drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Tee returns a Sink that forwards each event to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}

// EventHandler receives one event
type EventHandler func(Event)

// Subscriber receives the events it declares interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher fans an event out to whoever listens
type Publisher interface {
	Publish(Event)
}

// Bus is a Publisher that also accepts subscriptions. It is a Sink, so a
// game can emit straight into it.
type Bus interface {
	Publisher
	Sink
	Subscribe(Subscriber)
	Unsubscribe(subscriberID string)
	SubscribeFunc(eventType string, handler EventHandler) string
	UnsubscribeFunc(handlerID string) bool
}

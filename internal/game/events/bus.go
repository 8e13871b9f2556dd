package events

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AllEvents subscribes a function handler to every event type.
const AllEvents = "*"

var _ Bus = (*EventBus)(nil)

type funcHandler struct {
	id string
	fn EventHandler
}

// EventBus delivers each event synchronously, first to subscribers in the
// order they subscribed, then to handlers for its type, then to AllEvents
// handlers. Delivery order is stable so that consumers replaying a game see
// events exactly as the game emitted them.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	handlers    map[string][]funcHandler
	nextHandler map[string]int
	logger      zerolog.Logger
}

// NewEventBus creates a bus logging through the global logger
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates a bus logging through logger
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	return &EventBus{
		handlers:    make(map[string][]funcHandler),
		nextHandler: make(map[string]int),
		logger:      logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds s. A subscriber with the same ID is replaced in place.
func (eb *EventBus) Subscribe(s Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.indexOf(s.ID()); i >= 0 {
		eb.subscribers[i] = s
	} else {
		eb.subscribers = append(eb.subscribers, s)
	}
	eb.logger.Debug().Str("subscriber_id", s.ID()).Msg("Subscriber added")
}

// Unsubscribe removes the subscriber with id, if any
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.indexOf(id); i >= 0 {
		eb.subscribers = slices.Delete(eb.subscribers, i, i+1)
		eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed")
	}
}

func (eb *EventBus) indexOf(id string) int {
	return slices.IndexFunc(eb.subscribers, func(s Subscriber) bool { return s.ID() == id })
}

// SubscribeFunc registers handler for eventType, or for every event when
// eventType is AllEvents. The returned id can be passed to UnsubscribeFunc.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextHandler[eventType]++
	id := fmt.Sprintf("%s_func_%d", eventType, eb.nextHandler[eventType])
	eb.handlers[eventType] = append(eb.handlers[eventType], funcHandler{id: id, fn: handler})

	eb.logger.Debug().Str("event_type", eventType).Str("handler_id", id).Msg("Function handler added")
	return id
}

// UnsubscribeFunc removes the handler registered under id. It reports
// whether one was found.
func (eb *EventBus) UnsubscribeFunc(id string) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for eventType, hs := range eb.handlers {
		i := slices.IndexFunc(hs, func(h funcHandler) bool { return h.id == id })
		if i < 0 {
			continue
		}
		eb.handlers[eventType] = slices.Delete(hs, i, i+1)
		return true
	}
	return false
}

// Publish delivers event. Handlers run without the bus lock held, so they
// may subscribe or unsubscribe; such changes apply from the next event. A
// panicking handler is logged and skipped.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.RLock()
	subscribers := slices.Clone(eb.subscribers)
	handlers := append(slices.Clone(eb.handlers[eventType]), eb.handlers[AllEvents]...)
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	for _, s := range subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(s.ID(), event, s.HandleEvent)
		}
	}
	for _, h := range handlers {
		eb.deliver(h.id, event, h.fn)
	}
}

// Emit implements Sink so the bus can be handed directly to a game.
func (eb *EventBus) Emit(event Event) {
	eb.Publish(event)
}

func (eb *EventBus) deliver(receiver string, event Event, fn EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver", receiver).
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Event receiver panicked")
		}
	}()
	fn(event)
}

// SubscriberCount returns the number of subscribers
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// HandlerCount returns the number of function handlers for eventType
func (eb *EventBus) HandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.handlers[eventType])
}

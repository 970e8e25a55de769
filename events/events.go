package events

import (
	"context"
	"sync"

	"mhroulette/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeProfileCreated EventType = "profile_created"
	EventTypeWeaponsDrawn   EventType = "weapons_drawn"
	EventTypeStatsReset     EventType = "stats_reset"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// ProfileCreatedEvent fires the first time a caller touches the bot
type ProfileCreatedEvent struct {
	DiscordID int64
}

func (e ProfileCreatedEvent) Type() EventType {
	return EventTypeProfileCreated
}

// WeaponsDrawnEvent fires after a draw command, with every weapon that
// was assigned (a multi-draw produces one event carrying all of them)
type WeaponsDrawnEvent struct {
	DiscordID     int64
	Weapons       []models.Weapon
	FromFavorites bool
}

func (e WeaponsDrawnEvent) Type() EventType {
	return EventTypeWeaponsDrawn
}

// StatsResetEvent fires when a user zeroes their draw counters
type StatsResetEvent struct {
	DiscordID int64
}

func (e StatsResetEvent) Type() EventType {
	return EventTypeStatsReset
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers.
// Handlers run asynchronously so emitting never blocks a request.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

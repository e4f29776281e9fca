package events

import (
	"fmt"
	"sync"

	"filmlog/internal/logging"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publishing goroutine, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]listener
	nextID    int
}

type listener struct {
	id      int
	handler func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]listener),
	}
}

// Subscribe registers a listener for an event type and returns a function
// that removes it
func (b *Bus) Subscribe(eventType string, handler func(interface{})) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], listener{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		ls := b.listeners[eventType]
		for i, l := range ls {
			if l.id == id {
				b.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	eventType := TypeOf(event)

	b.mu.RLock()
	ls := make([]listener, len(b.listeners[eventType]))
	copy(ls, b.listeners[eventType])
	b.mu.RUnlock()

	log := logging.Logger()
	log.Trace().Str("event", eventType).Int("listeners", len(ls)).Msg("ui event")
	for _, l := range ls {
		l.handler(event)
	}
}

// TypeOf returns the event type name used for subscriptions, the event's
// package-qualified Go type
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

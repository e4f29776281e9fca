package eventbus

import (
	"runtime/debug"
	"sync"

	"filmlog/internal/domain"
	"filmlog/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventContentLoaded      = domain.EventContentLoaded
	EventFiltersApplied     = domain.EventFiltersApplied
	EventSearchStateChanged = domain.EventSearchStateChanged
	EventSearchUnavailable  = domain.EventSearchUnavailable
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type ContentLoadedEvent = domain.ContentLoadedEvent
type FiltersAppliedEvent = domain.FiltersAppliedEvent
type SearchStateChangedEvent = domain.SearchStateChangedEvent
type SearchUnavailableEvent = domain.SearchUnavailableEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus. Events are delivered in
// publish order; each handler runs on the dispatcher goroutine.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *Bus) Publish(event DomainEvent) {
	log := logging.Logger()
	// Search state changes fire on every keystroke
	if event.Type() != EventSearchStateChanged {
		log.Debug().Str("event", string(event.Type())).Msg("eventbus: publishing")
	}

	select {
	case b.eventChan <- event:
	case <-b.quit:
	default:
		log.Warn().Str("event", string(event.Type())).Msg("eventbus: channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are dropped.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log := logging.Logger()
			log.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("eventbus: handler panic")
		}
	}()
	h(event)
}

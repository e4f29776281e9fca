package state

import (
	"sync"

	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
	"filmlog/internal/ui/logic"
)

// Store holds the current state of one listing and applies dispatched
// actions in order.
type Store[T any] struct {
	mu      sync.Mutex
	def     *Definition[T]
	current List[T]
	bus     eventbus.EventBus
}

// NewStore creates a store seeded with the listing's items. bus may be nil.
func NewStore[T any](def *Definition[T], all []T, sort logic.SortValue, bus eventbus.EventBus) *Store[T] {
	return &Store[T]{
		def:     def,
		current: Init(def, all, sort, nil),
		bus:     bus,
	}
}

// Dispatch applies action and returns the resulting state
func (s *Store[T]) Dispatch(action Action) List[T] {
	s.mu.Lock()
	s.current = Reduce(s.def, s.current, action)
	next := s.current
	s.mu.Unlock()

	log := logging.Logger()
	log.Debug().
		Str("list", s.def.Name).
		Str("action", string(action.Type())).
		Int("filtered", len(next.FilteredValues)).
		Int("visible", next.VisibleCount()).
		Msg("list action")

	if action.Type() == ActionApplyPendingFilters && s.bus != nil {
		s.bus.Publish(eventbus.FiltersAppliedEvent{
			List:          s.def.Name,
			ActiveFilters: next.ActiveFilterCount(),
			ResultCount:   len(next.FilteredValues),
		})
	}
	return next
}

// Current returns the current state
func (s *Store[T]) Current() List[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Definition returns the listing definition
func (s *Store[T]) Definition() *Definition[T] {
	return s.def
}

package sorting

import (
	"filmlog/internal/ui/lists"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/services/events"
)

// Service tracks the sort selector of every list and dispatches the chosen
// sort to the list's store
type Service struct {
	states   map[string]*State
	bus      events.EventBus
	dispatch func(list string, value logic.SortValue)
}

// NewService creates a new sorting service. dispatch applies a sort to the
// named list.
func NewService(bus events.EventBus, dispatch func(list string, value logic.SortValue)) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		states:   make(map[string]*State),
		bus:      bus,
		dispatch: dispatch,
	}
}

// Register adds a list's sort options with current selected
func (s *Service) Register(list string, options []lists.SortOption, current logic.SortValue) {
	s.states[list] = &State{Options: options, Index: max(indexOf(options, current), 0)}
}

// Options returns the sort options of list
func (s *Service) Options(list string) []lists.SortOption {
	if st := s.states[list]; st != nil {
		return st.Options
	}
	return nil
}

// Values returns the sort values of list in selector order
func (s *Service) Values(list string) []string {
	options := s.Options(list)
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = string(o.Value)
	}
	return values
}

// Current returns the selected option of list
func (s *Service) Current(list string) (lists.SortOption, bool) {
	st := s.states[list]
	if st == nil || len(st.Options) == 0 {
		return lists.SortOption{}, false
	}
	return st.Options[st.Index], true
}

// SetSort selects value for list. Values the list does not offer are ignored.
func (s *Service) SetSort(list string, value logic.SortValue) bool {
	st := s.states[list]
	if st == nil {
		return false
	}
	i := indexOf(st.Options, value)
	if i < 0 {
		return false
	}

	old := st.Options[st.Index].Value
	st.Index = i
	if old == value {
		return true
	}
	if s.dispatch != nil {
		s.dispatch(list, value)
	}
	s.bus.Publish(SortChangedEvent{List: list, OldValue: string(old), NewValue: string(value)})
	return true
}

// Next cycles list to its next sort option
func (s *Service) Next(list string) {
	st := s.states[list]
	if st == nil || len(st.Options) == 0 {
		return
	}
	next := (st.Index + 1) % len(st.Options)
	s.SetSort(list, st.Options[next].Value)
}

func indexOf(options []lists.SortOption, value logic.SortValue) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

package navigation

import (
	"filmlog/internal/ui/services/events"
)

// reservedLines are taken by the tabs, list header, status bar and help line
const reservedLines = 8

// Service moves the cursor over the rows of the list on screen
type Service struct {
	state    *State
	bus      events.EventBus
	maxFn    func() int   // highest row index
	groupsFn func() []int // indexes of group header rows
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			ViewportHeight: 20, // replaced on the first window size
		},
		bus: bus,
	}
}

// SetQueryFunctions sets the functions used to read the row layout
func (s *Service) SetQueryFunctions(maxIndex func() int, groupStarts func() []int) {
	s.maxFn = maxIndex
	s.groupsFn = groupStarts
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight sizes the viewport from the terminal height
func (s *Service) SetViewportHeight(height int) {
	s.state.ViewportHeight = max(height-reservedLines, 1)
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refreshMax()
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - (s.state.ViewportHeight - 1))
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + (s.state.ViewportHeight - 1))
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.MaxIndex
	case DirectionNextGroup:
		s.state.Cursor = s.nextGroup()
	case DirectionPrevGroup:
		s.state.Cursor = s.prevGroup()
	}
	s.ensureVisible()
	s.publishMove(oldCursor)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refreshMax()
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
	s.publishMove(oldCursor)
}

// Reset returns to the first row, used when the rows are replaced wholesale
func (s *Service) Reset() {
	s.refreshMax()
	oldCursor := s.state.Cursor
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.publishMove(oldCursor)
}

// Clamp keeps the cursor on a row after the rows shrank
func (s *Service) Clamp() {
	s.MoveToIndex(s.state.Cursor)
}

func (s *Service) nextGroup() int {
	for _, start := range s.groupStarts() {
		if start > s.state.Cursor {
			return start
		}
	}
	return s.state.Cursor
}

func (s *Service) prevGroup() int {
	starts := s.groupStarts()
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] < s.state.Cursor {
			return starts[i]
		}
	}
	return s.state.Cursor
}

func (s *Service) groupStarts() []int {
	if s.groupsFn == nil {
		return nil
	}
	return s.groupsFn()
}

func (s *Service) refreshMax() {
	if s.maxFn != nil {
		s.state.MaxIndex = s.maxFn()
	}
}

func (s *Service) clampIndex(index int) int {
	return max(0, min(index, s.state.MaxIndex))
}

func (s *Service) publishMove(oldCursor int) {
	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

func (s *Service) ensureVisible() {
	old := s.state.ViewportOffset
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if s.state.ViewportOffset != old {
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filmlog/internal/ui/services/events"
)

func newService(maxIndex int, groups ...int) *Service {
	s := NewService(nil)
	s.SetQueryFunctions(func() int { return maxIndex }, func() []int { return groups })
	return s
}

func TestNavigateClampsToRows(t *testing.T) {
	s := newService(3)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, 2, s.GetCursor())

	s.Navigate(DirectionEnd)
	s.Navigate(DirectionDown)
	assert.Equal(t, 3, s.GetCursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetCursor())
}

func TestNavigateGroups(t *testing.T) {
	s := newService(9, 0, 4, 7)

	s.Navigate(DirectionNextGroup)
	assert.Equal(t, 4, s.GetCursor())
	s.Navigate(DirectionNextGroup)
	assert.Equal(t, 7, s.GetCursor())
	s.Navigate(DirectionNextGroup)
	assert.Equal(t, 7, s.GetCursor(), "stays on the last group")

	s.MoveToIndex(5)
	s.Navigate(DirectionPrevGroup)
	assert.Equal(t, 4, s.GetCursor())
	s.Navigate(DirectionPrevGroup)
	assert.Equal(t, 0, s.GetCursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	bus := events.NewBus()
	var offsets []int
	bus.Subscribe(events.TypeOf(ViewportChangedEvent{}), func(e interface{}) {
		offsets = append(offsets, e.(ViewportChangedEvent).Offset)
	})

	s := NewService(bus)
	s.SetQueryFunctions(func() int { return 99 }, nil)
	s.SetViewportHeight(reservedLines + 5)
	assert.Equal(t, 5, s.GetViewportHeight())

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 4, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())

	s.Navigate(DirectionDown)
	assert.Equal(t, 1, s.GetViewportOffset())

	s.MoveToIndex(50)
	assert.Equal(t, 46, s.GetViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 46, s.GetCursor())
	assert.Equal(t, 46, s.GetViewportOffset())

	assert.Equal(t, []int{1, 46}, offsets)
}

func TestResetAndClamp(t *testing.T) {
	bus := events.NewBus()
	var moves []CursorMovedEvent
	bus.Subscribe(events.TypeOf(CursorMovedEvent{}), func(e interface{}) {
		moves = append(moves, e.(CursorMovedEvent))
	})

	maxIndex := 20
	s := NewService(bus)
	s.SetQueryFunctions(func() int { return maxIndex }, nil)

	s.MoveToIndex(15)
	maxIndex = 6
	s.Clamp()
	assert.Equal(t, 6, s.GetCursor())

	s.Reset()
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())

	assert.Equal(t, []CursorMovedEvent{{0, 15}, {15, 6}, {6, 0}}, moves)
}

func TestSetViewportHeightHasFloor(t *testing.T) {
	s := NewService(nil)
	s.SetViewportHeight(2)
	assert.Equal(t, 1, s.GetViewportHeight())
}

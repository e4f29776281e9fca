package query

import (
	"fmt"

	"filmlog/internal/ui/services/events"
	"filmlog/internal/ui/state"
)

// Service answers questions about the rows of the list on screen
type Service struct {
	bus  events.EventBus
	list string
	rows []Row
}

// NewService creates a new query service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{bus: bus}
}

// BuildRows flattens a list state into rows: a header per group followed by
// its items, or the visible items alone when the list is ungrouped, then a
// show-more row while items remain hidden.
func BuildRows[T any](s state.List[T], format func(T) Item) []Row {
	var rows []Row
	if g := s.GroupedValues; g != nil {
		index := 0
		for _, key := range g.Keys() {
			items := g.Get(key)
			rows = append(rows, Row{Kind: RowGroup, Group: key, Count: len(items)})
			for _, v := range items {
				rows = append(rows, Row{Kind: RowItem, Group: key, Index: index, Item: format(v)})
				index++
			}
		}
	} else {
		for i, v := range s.VisibleValues() {
			rows = append(rows, Row{Kind: RowItem, Index: i, Item: format(v)})
		}
	}

	if s.HasMore() {
		rows = append(rows, Row{
			Kind:  RowShowMore,
			Count: len(s.FilteredValues) - s.VisibleCount(),
			Item: Item{Label: fmt.Sprintf("Show more (%d of %d shown)",
				s.VisibleCount(), len(s.FilteredValues))},
		})
	}
	return rows
}

// SetRows replaces the rows for list
func (s *Service) SetRows(list string, rows []Row) {
	s.list = list
	s.rows = rows
	s.bus.Publish(RowsChangedEvent{List: list, Count: len(rows)})
}

// Rows returns the current rows
func (s *Service) Rows() []Row {
	return s.rows
}

// Len returns the number of rows
func (s *Service) Len() int {
	return len(s.rows)
}

// GetMaxIndex returns the maximum selectable index
func (s *Service) GetMaxIndex() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows) - 1
}

// RowAt returns the row at index
func (s *Service) RowAt(index int) (Row, bool) {
	if index < 0 || index >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[index], true
}

// GroupAt returns the group of the row at index, or ""
func (s *Service) GroupAt(index int) string {
	row, _ := s.RowAt(index)
	return row.Group
}

// GroupStarts returns the indexes of the group header rows
func (s *Service) GroupStarts() []int {
	var starts []int
	for i, row := range s.rows {
		if row.Kind == RowGroup {
			starts = append(starts, i)
		}
	}
	return starts
}

// IndexOfItem returns the row showing the visible value at item, or -1
func (s *Service) IndexOfItem(item int) int {
	for i, row := range s.rows {
		if row.Kind == RowItem && row.Index == item {
			return i
		}
	}
	return -1
}

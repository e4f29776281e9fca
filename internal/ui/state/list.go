package state

import (
	"filmlog/internal/ui/logic"
)

// DefaultPageSize is how many items a paginated list shows before "show more"
const DefaultPageSize = 100

// Definition describes how one listing sorts, groups and filters its items
type Definition[T any] struct {
	Name       string
	Sorts      logic.SortTable[T]
	Groups     logic.GroupTable[T] // nil disables grouping
	Dimensions logic.Dimensions[T]
	PageSize   int // 0 disables pagination
}

// List is the state of one listing for the lifetime of its page
type List[T any] struct {
	AllValues []T
	Sort      logic.SortValue

	ActiveFilterValues  logic.FilterValues
	PendingFilterValues logic.FilterValues
	Filters             logic.FilterSet[T]
	PendingFilters      logic.FilterSet[T]

	// Derived
	FilteredValues       []T
	GroupedValues        *logic.Groups[T]
	PendingFilteredCount int
	ShowCount            int
}

// Init builds the initial state from the values supplied at mount
func Init[T any](def *Definition[T], all []T, sort logic.SortValue, initial logic.FilterValues) List[T] {
	values := logic.FilterValues{}
	for k, v := range initial {
		values = values.With(k, v)
	}
	filters := def.Dimensions.Compile(values)

	s := List[T]{
		AllValues:           all,
		Sort:                sort,
		ActiveFilterValues:  values,
		PendingFilterValues: values.Clone(),
		Filters:             filters,
		PendingFilters:      cloneSet(filters),
		ShowCount:           def.PageSize,
	}
	s.FilteredValues = def.filterAndSort(all, filters, sort)
	s.GroupedValues = def.group(s)
	s.PendingFilteredCount = len(s.FilteredValues)
	return s
}

// VisibleCount returns how many filtered items are currently shown
func (s List[T]) VisibleCount() int {
	if s.ShowCount <= 0 {
		return len(s.FilteredValues)
	}
	return min(s.ShowCount, len(s.FilteredValues))
}

// VisibleValues returns the shown slice of FilteredValues
func (s List[T]) VisibleValues() []T {
	return s.FilteredValues[:s.VisibleCount()]
}

// HasMore reports whether "show more" would reveal more items
func (s List[T]) HasMore() bool {
	return s.VisibleCount() < len(s.FilteredValues)
}

// ActiveFilterCount returns the number of applied dimensions
func (s List[T]) ActiveFilterCount() int {
	return len(s.Filters)
}

// PendingFilterCount returns the number of dimensions set in the drawer
func (s List[T]) PendingFilterCount() int {
	return len(s.PendingFilters)
}

func (d *Definition[T]) filterAndSort(all []T, filters logic.FilterSet[T], sort logic.SortValue) []T {
	return logic.Sort(logic.Filter(all, filters), d.Sorts, sort)
}

func (d *Definition[T]) group(s List[T]) *logic.Groups[T] {
	if d.Groups == nil {
		return nil
	}
	return logic.Group(s.VisibleValues(), d.Groups.KeyFor(s.Sort))
}

func cloneSet[T any](set logic.FilterSet[T]) logic.FilterSet[T] {
	next := make(logic.FilterSet[T], len(set))
	for k, p := range set {
		next[k] = p
	}
	return next
}

package state

import (
	"fmt"

	"filmlog/internal/ui/logic"
)

// Reduce applies action to s and returns the next state. s is not modified
// and the result shares no mutable maps with it.
func Reduce[T any](def *Definition[T], s List[T], action Action) List[T] {
	switch a := action.(type) {
	case SortAction:
		return sortList(def, s, a)
	case PendingFilterChangedAction:
		return changePendingFilter(def, s, a)
	case ApplyPendingFiltersAction:
		return applyPendingFilters(def, s)
	case ClearPendingFiltersAction:
		return clearPendingFilters(s)
	case ResetPendingFiltersAction:
		return resetPendingFilters(s)
	case ShowMoreAction:
		return showMore(def, s, a)
	default:
		panic(fmt.Sprintf("state: unhandled action %T", action))
	}
}

func sortList[T any](def *Definition[T], s List[T], a SortAction) List[T] {
	next := s
	next.Sort = a.Value
	next.FilteredValues = def.filterAndSort(s.AllValues, s.Filters, a.Value)
	next.GroupedValues = def.group(next)
	return next
}

func changePendingFilter[T any](def *Definition[T], s List[T], a PendingFilterChangedAction) List[T] {
	next := s
	next.PendingFilterValues = s.PendingFilterValues.With(a.Key, a.Value)
	next.PendingFilters = def.Dimensions.Recompile(s.PendingFilters, a.Key, a.Value)
	next.PendingFilteredCount = logic.Count(s.AllValues, next.PendingFilters)
	return next
}

func applyPendingFilters[T any](def *Definition[T], s List[T]) List[T] {
	next := s
	next.ActiveFilterValues = s.PendingFilterValues.Clone()
	next.Filters = cloneSet(s.PendingFilters)
	next.PendingFilterValues = s.PendingFilterValues.Clone()
	next.PendingFilters = cloneSet(s.PendingFilters)
	next.FilteredValues = def.filterAndSort(s.AllValues, next.Filters, s.Sort)
	next.ShowCount = def.PageSize
	next.GroupedValues = def.group(next)
	next.PendingFilteredCount = len(next.FilteredValues)
	return next
}

func clearPendingFilters[T any](s List[T]) List[T] {
	next := s
	next.PendingFilterValues = logic.FilterValues{}
	next.PendingFilters = logic.FilterSet[T]{}
	next.PendingFilteredCount = len(s.AllValues)
	return next
}

func resetPendingFilters[T any](s List[T]) List[T] {
	next := s
	next.PendingFilterValues = s.ActiveFilterValues.Clone()
	next.PendingFilters = cloneSet(s.Filters)
	next.PendingFilteredCount = len(s.FilteredValues)
	return next
}

func showMore[T any](def *Definition[T], s List[T], a ShowMoreAction) List[T] {
	if def.PageSize <= 0 {
		return s
	}
	increment := a.Increment
	if increment <= 0 {
		increment = def.PageSize
	}

	next := s
	next.ShowCount = max(s.ShowCount, min(s.ShowCount+increment, len(s.FilteredValues)))
	next.GroupedValues = def.group(next)
	return next
}

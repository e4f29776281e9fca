package state

import "filmlog/internal/ui/logic"

// ActionType tags a list action
type ActionType string

const (
	ActionSort                 ActionType = "sort"
	ActionPendingFilterChanged ActionType = "pending_filter_changed"
	ActionApplyPendingFilters  ActionType = "apply_pending_filters"
	ActionClearPendingFilters  ActionType = "clear_pending_filters"
	ActionResetPendingFilters  ActionType = "reset_pending_filters"
	ActionShowMore             ActionType = "show_more"
)

// Action is a list state transition request
type Action interface {
	Type() ActionType
}

// SortAction switches the active sort
type SortAction struct {
	Value logic.SortValue
}

func (a SortAction) Type() ActionType { return ActionSort }

// PendingFilterChangedAction edits one dimension in the drawer
type PendingFilterChangedAction struct {
	Key   logic.FilterKey
	Value logic.FilterValue // nil or empty clears the dimension
}

func (a PendingFilterChangedAction) Type() ActionType { return ActionPendingFilterChanged }

// ApplyPendingFiltersAction promotes pending filters to active
type ApplyPendingFiltersAction struct{}

func (a ApplyPendingFiltersAction) Type() ActionType { return ActionApplyPendingFilters }

// ClearPendingFiltersAction empties the pending filters without applying
type ClearPendingFiltersAction struct{}

func (a ClearPendingFiltersAction) Type() ActionType { return ActionClearPendingFilters }

// ResetPendingFiltersAction discards pending edits since the last apply
type ResetPendingFiltersAction struct{}

func (a ResetPendingFiltersAction) Type() ActionType { return ActionResetPendingFilters }

// ShowMoreAction reveals another page
type ShowMoreAction struct {
	Increment int // 0 uses the list's page size
}

func (a ShowMoreAction) Type() ActionType { return ActionShowMore }

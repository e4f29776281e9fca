package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "nextgroup", "prevgroup"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchListAction moves between the list tabs
type SwitchListAction struct {
	Delta int
}

func (a SwitchListAction) Type() string { return "switch_list" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// List actions
type ShowMoreAction struct{}

func (a ShowMoreAction) Type() string { return "show_more" }

type OpenItemAction struct{}

func (a OpenItemAction) Type() string { return "open_item" }

// Drawer actions
type ToggleDrawerAction struct{}

func (a ToggleDrawerAction) Type() string { return "toggle_drawer" }

// CloseDrawerAction closes the drawer without applying, as Escape does
type CloseDrawerAction struct{}

func (a CloseDrawerAction) Type() string { return "close_drawer" }

type ViewResultsAction struct{}

func (a ViewResultsAction) Type() string { return "view_results" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// FocusControlAction moves focus between drawer controls
type FocusControlAction struct {
	Delta int
}

func (a FocusControlAction) Type() string { return "focus_control" }

// AdjustControlAction steps the focused control's value or option cursor
type AdjustControlAction struct {
	Delta int
}

func (a AdjustControlAction) Type() string { return "adjust_control" }

// ToggleOptionAction flips the option under the cursor of a multi-select
type ToggleOptionAction struct{}

func (a ToggleOptionAction) Type() string { return "toggle_option" }

// EditTextAction replaces the focused text control's value
type EditTextAction struct {
	Text string
}

func (a EditTextAction) Type() string { return "edit_text" }

// Search actions
type SearchSelectAction struct {
	Delta int
}

func (a SearchSelectAction) Type() string { return "search_select" }

type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type OpenResultAction struct{}

func (a OpenResultAction) Type() string { return "open_result" }

// Sort actions
type SortByAction struct {
	Value string
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

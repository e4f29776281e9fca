package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeSort
	ModeDrawer
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeSort:
		return "sort"
	case ModeDrawer:
		return "drawer"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	IsOnGroup() bool
	IsOnShowMore() bool
	CurrentGroupName() string
	HasMore() bool

	// CurrentSort and SortValues describe the active list's sort selector.
	CurrentSort() string
	SortValues() []string

	// FocusedControl returns the kind of drawer control with focus, or "".
	FocusedControl() string
	SearchCanLoadMore() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// Drawer control kinds reported by Context.FocusedControl
const (
	ControlText   = "text"
	ControlSelect = "select"
	ControlRange  = "range"
	ControlMulti  = "multi"
	ControlChoice = "choice"
)

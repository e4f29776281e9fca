package drawer

// Layout is the drawer markup variant found on the page
type Layout int

const (
	LayoutNotFound Layout = iota
	LayoutDrawer          // toggle, drawer and backdrop elements
	LayoutLegacy          // toggle and inline filter panel, no backdrop
)

func (l Layout) String() string {
	switch l {
	case LayoutDrawer:
		return "drawer"
	case LayoutLegacy:
		return "legacy"
	default:
		return "not-found"
	}
}

// Element ids probed by DetectLayout
const (
	IDToggle         = "filters-toggle"
	IDDrawer         = "filters"
	IDBackdrop       = "filters-backdrop"
	IDLegacyToggle   = "toggle-filters"
	IDLegacyPanel    = "filter-panel"
	BodyScrollLocked = "filters-open"
)

// Element is a focusable part of the page
type Element interface {
	Focus()
}

// Document is the page the drawer is wired into
type Document interface {
	// Find returns the element with id, or nil.
	Find(id string) Element
	// FirstFocusable returns the first focusable control inside container, or nil.
	FirstFocusable(container Element) Element
	// SetBodyFlag sets or clears a page-level flag such as the scroll lock.
	SetBodyFlag(flag string, on bool)
	// AfterPaint runs fn once the next frame has been drawn.
	AfterPaint(fn func())
}

// Elements are the pieces of the page the controller drives
type Elements struct {
	Layout   Layout
	Toggle   Element
	Drawer   Element
	Backdrop Element // nil for the legacy layout
}

// State holds drawer state
type State struct {
	IsOpen    bool
	IsOpening bool // set while the open transition has not been painted yet
}

// CloseReason records how the drawer was closed
type CloseReason string

const (
	CloseToggle      CloseReason = "toggle"
	CloseEscape      CloseReason = "escape"
	CloseBackdrop    CloseReason = "backdrop"
	CloseOutside     CloseReason = "outside"
	CloseViewResults CloseReason = "view-results"
)

// Event types
type DrawerOpenedEvent struct{}

type DrawerClosedEvent struct {
	Reason  CloseReason
	Applied bool
}

type FiltersClearedEvent struct{}

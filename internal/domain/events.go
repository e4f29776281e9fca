package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventContentLoaded      EventType = "ContentLoaded"
	EventFiltersApplied     EventType = "FiltersApplied"
	EventSearchStateChanged EventType = "SearchStateChanged"
	EventSearchUnavailable  EventType = "SearchUnavailable"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ContentLoadedEvent is emitted once content collections are available
type ContentLoadedEvent struct {
	Titles      int
	Watchlist   int
	CastAndCrew int
	Collections int
}

func (e ContentLoadedEvent) Type() EventType { return EventContentLoaded }

// FiltersAppliedEvent is emitted when a list promotes its pending filters
type FiltersAppliedEvent struct {
	List          string
	ActiveFilters int
	ResultCount   int
}

func (e FiltersAppliedEvent) Type() EventType { return EventFiltersApplied }

// SearchStateChangedEvent carries a snapshot of the search client's state.
// State is typed as any to keep domain free of ui imports.
type SearchStateChangedEvent struct {
	Generation uint64
	State      any
}

func (e SearchStateChangedEvent) Type() EventType { return EventSearchStateChanged }

// SearchUnavailableEvent is emitted once when the search index fails to load
type SearchUnavailableEvent struct {
	Err error
}

func (e SearchUnavailableEvent) Type() EventType { return EventSearchUnavailable }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"filmlog/internal/eventbus"
	"filmlog/internal/ui/services/search"
)

var printer = message.NewPrinter(language.English)

// Outcome is what the browser changes in response to one domain event
type Outcome struct {
	// SearchState is the refreshed search state, nil when unchanged.
	SearchState   *search.State
	Status        string
	StatusIsError bool
}

// EventHandler turns domain events into browser updates
type EventHandler struct {
	search    *search.Service
	listTitle func(name string) (string, bool)
}

// NewEventHandler creates an event handler. searchSvc may be nil;
// listTitle maps a list name to the title of its tab.
func NewEventHandler(searchSvc *search.Service, listTitle func(name string) (string, bool)) *EventHandler {
	return &EventHandler{
		search:    searchSvc,
		listTitle: listTitle,
	}
}

// HandleEvent processes a domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) Outcome {
	switch e := event.(type) {
	case eventbus.SearchStateChangedEvent:
		// Events can arrive out of order; the service holds the latest state
		return Outcome{SearchState: h.searchState()}

	case eventbus.SearchUnavailableEvent:
		return Outcome{SearchState: h.searchState(), Status: search.UnavailableMessage, StatusIsError: true}

	case eventbus.FiltersAppliedEvent:
		title, ok := h.listTitle(e.List)
		if !ok {
			return Outcome{}
		}
		return Outcome{Status: printer.Sprintf("%s: %d results, %d filters", title, e.ResultCount, e.ActiveFilters)}

	case eventbus.ContentLoadedEvent:
		return Outcome{Status: printer.Sprintf("Loaded %d titles, %d watchlist titles, %d cast and crew, %d collections",
			e.Titles, e.Watchlist, e.CastAndCrew, e.Collections)}

	case eventbus.ErrorEvent:
		msg := e.Message
		if msg == "" && e.Err != nil {
			msg = e.Err.Error()
		}
		return Outcome{Status: msg, StatusIsError: true}
	}
	return Outcome{}
}

func (h *EventHandler) searchState() *search.State {
	if h.search == nil {
		return nil
	}
	st := h.search.State()
	return &st
}

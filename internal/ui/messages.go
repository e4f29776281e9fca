package ui

import (
	"filmlog/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of showing text in the pager
type pagerMsg struct {
	err error
}

// loadMoreMsg contains the result of loading another page of search results
type loadMoreMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

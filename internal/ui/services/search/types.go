package search

import (
	"context"
	"errors"
	"time"

	"filmlog/internal/domain"
)

// User-facing messages. Underlying errors are logged, never shown.
const (
	ErrorMessage         = "Search failed. Please try again."
	LoadMoreErrorMessage = "Failed to load more results."
	UnavailableMessage   = "Search is unavailable."
)

// Defaults applied by NewService
const (
	DefaultDebounce        = 150 * time.Millisecond
	DefaultPageSize        = 10
	DefaultAnnouncementTTL = time.Second
)

// ErrAborted is returned by providers when a search is cancelled because a
// newer one superseded it
var ErrAborted = errors.New("search aborted")

// IsAborted reports whether err is a cancellation rather than a failure
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled)
}

// Provider is the static search index the service wraps
type Provider interface {
	// Init loads the index bundle. Calling it again is a no-op.
	Init(ctx context.Context, bundle string) error
	// Search runs query and must stop promptly when ctx is cancelled.
	Search(ctx context.Context, query string) (Response, error)
	// Destroy releases the index.
	Destroy(ctx context.Context) error
}

// Response is the provider's answer to one query
type Response struct {
	Results          []ResultHandle
	TotalResultCount int
}

// ResultHandle lazily resolves one result document
type ResultHandle interface {
	ID() string
	Data(ctx context.Context) (domain.Document, error)
}

// Options configure the service
type Options struct {
	Bundle          string
	Debounce        time.Duration
	PageSize        int
	AnnouncementTTL time.Duration
}

// Status is the render state of the search modal
type Status int

const (
	StatusIdle Status = iota
	StatusSearching
	StatusResults
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSearching:
		return "searching"
	case StatusResults:
		return "results"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State holds search state
type State struct {
	Query          string
	Status         Status
	IsSearching    bool
	HasSearched    bool
	Results        []domain.Document
	TotalResults   int
	VisibleResults int
	Error          string

	IsLoadingMore bool
	LoadMoreError string
	Announcement  string // live-region text, cleared shortly after it is set
	Unavailable   bool
}

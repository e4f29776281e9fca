package search

import (
	"fmt"
	"slices"

	"filmlog/internal/domain"
)

// Idle discards results and returns to the idle state, keeping the typed query
func Idle(s State) State {
	return State{Query: s.Query, Unavailable: s.Unavailable}
}

// Cleared resets everything including the query
func Cleared(s State) State {
	return State{Unavailable: s.Unavailable}
}

// Started enters the searching state for query from any state
func Started(s State, query string) State {
	return State{
		Query:       query,
		Status:      StatusSearching,
		IsSearching: true,
		HasSearched: s.HasSearched,
		Unavailable: s.Unavailable,
	}
}

// Resolved shows the first page of results
func Resolved(s State, first []domain.Document, total int) State {
	next := s
	next.Status = StatusResults
	next.IsSearching = false
	next.HasSearched = true
	next.Results = slices.Clone(first)
	next.TotalResults = total
	next.VisibleResults = len(first)
	next.Error = ""
	next.LoadMoreError = ""
	return next
}

// Failed enters the error state with a user-facing message
func Failed(s State, message string) State {
	next := s
	next.Status = StatusError
	next.IsSearching = false
	next.HasSearched = true
	next.Results = nil
	next.TotalResults = 0
	next.VisibleResults = 0
	next.Error = message
	return next
}

// LoadMoreStarted marks a load-more request in flight
func LoadMoreStarted(s State) State {
	next := s
	next.IsLoadingMore = true
	next.LoadMoreError = ""
	return next
}

// LoadedMore appends a page and announces how many results arrived
func LoadedMore(s State, page []domain.Document) State {
	next := s
	next.IsLoadingMore = false
	next.Results = append(slices.Clone(s.Results), page...)
	next.VisibleResults = len(next.Results)
	next.Announcement = Announcement(len(page))
	return next
}

// LoadMoreFailed keeps the rendered results and shows an inline message
func LoadMoreFailed(s State) State {
	next := s
	next.IsLoadingMore = false
	next.LoadMoreError = LoadMoreErrorMessage
	return next
}

// AnnouncementCleared removes the live-region message
func AnnouncementCleared(s State) State {
	next := s
	next.Announcement = ""
	return next
}

// MarkUnavailable records a failed index load
func MarkUnavailable(s State) State {
	next := s
	next.Unavailable = true
	next.IsSearching = false
	if next.Status == StatusSearching {
		next.Status = StatusIdle
	}
	return next
}

// Announcement is the live-region text for n newly loaded results
func Announcement(n int) string {
	if n == 1 {
		return "Loaded 1 more result"
	}
	return fmt.Sprintf("Loaded %d more results", n)
}

// CanLoadMore reports whether another page exists
func (s State) CanLoadMore() bool {
	return s.Status == StatusResults && s.VisibleResults < s.TotalResults
}

// NextPageSize returns how many results the next LoadMore would add
func (s State) NextPageSize(pageSize int) int {
	return min(pageSize, max(s.TotalResults-s.VisibleResults, 0))
}

// LoadMoreLabel is the text of the load-more control, or "" when hidden
func (s State) LoadMoreLabel(pageSize int) string {
	if !s.CanLoadMore() {
		return ""
	}
	return fmt.Sprintf("Load %d more (%d total)", s.NextPageSize(pageSize), s.TotalResults)
}

// Summary describes the current results
func (s State) Summary() string {
	switch s.Status {
	case StatusSearching:
		return "Searching..."
	case StatusError:
		return s.Error
	case StatusResults:
		if s.TotalResults == 1 {
			return fmt.Sprintf("1 result for %q", s.Query)
		}
		return fmt.Sprintf("%d results for %q", s.TotalResults, s.Query)
	}
	if s.Unavailable {
		return UnavailableMessage
	}
	return ""
}

// Clone returns a copy that shares no slices with s
func (s State) Clone() State {
	next := s
	next.Results = slices.Clone(s.Results)
	return next
}

package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"filmlog/internal/domain"
)

func docs(n int) []domain.Document {
	out := make([]domain.Document, n)
	for i := range out {
		out[i] = domain.Document{ID: fmt.Sprint(i)}
	}
	return out
}

func TestStartedFromAnyState(t *testing.T) {
	for _, from := range []State{
		{},
		Failed(Started(State{}, "a"), ErrorMessage),
		Resolved(Started(State{}, "a"), docs(2), 2),
	} {
		next := Started(from, "b")
		assert.Equal(t, StatusSearching, next.Status)
		assert.True(t, next.IsSearching)
		assert.Empty(t, next.Error)
		assert.Empty(t, next.Results)
		assert.Equal(t, from.HasSearched, next.HasSearched)
	}
}

func TestTransitionsDoNotShareResults(t *testing.T) {
	first := Resolved(Started(State{}, "a"), docs(2), 4)
	more := LoadedMore(first, docs(2))

	assert.Len(t, first.Results, 2)
	assert.Len(t, more.Results, 4)
	assert.Equal(t, 4, more.VisibleResults)

	clone := more.Clone()
	clone.Results[0].ID = "changed"
	assert.Equal(t, "0", more.Results[0].ID)
}

func TestLoadMoreLabel(t *testing.T) {
	s := Resolved(Started(State{}, "a"), docs(5), 12)

	assert.Equal(t, "Load 5 more (12 total)", s.LoadMoreLabel(5))
	s = LoadedMore(s, docs(5))
	assert.Equal(t, "Load 2 more (12 total)", s.LoadMoreLabel(5))
	s = LoadedMore(s, docs(2))
	assert.Equal(t, "", s.LoadMoreLabel(5))
	assert.Equal(t, "Loaded 2 more results", s.Announcement)
	assert.Equal(t, "Loaded 1 more result", Announcement(1))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", State{}.Summary())
	assert.Equal(t, "Searching...", Started(State{}, "x").Summary())
	assert.Equal(t, `1 result for "x"`, Resolved(Started(State{}, "x"), docs(1), 1).Summary())
	assert.Equal(t, ErrorMessage, Failed(State{}, ErrorMessage).Summary())
	assert.Equal(t, UnavailableMessage, MarkUnavailable(Started(State{}, "x")).Summary())
}

func TestIdleKeepsUnavailable(t *testing.T) {
	s := MarkUnavailable(State{})

	assert.True(t, Idle(s).Unavailable)
	assert.True(t, Cleared(s).Unavailable)
	assert.True(t, Started(s, "q").Unavailable)
}

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(ErrAborted))
	assert.True(t, IsAborted(fmt.Errorf("wrapped: %w", ErrAborted)))
	assert.True(t, IsAborted(context.Canceled))
	assert.False(t, IsAborted(errors.New("boom")))
	assert.False(t, IsAborted(nil))
}

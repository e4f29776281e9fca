package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmlog/internal/eventbus"
	"filmlog/internal/ui/services/search"
)

type brokenIndex struct{}

func (brokenIndex) Init(ctx context.Context, bundle string) error {
	return errors.New("bundle missing")
}

func (brokenIndex) Search(ctx context.Context, query string) (search.Response, error) {
	return search.Response{}, nil
}

func (brokenIndex) Destroy(ctx context.Context) error { return nil }

func titles(name string) (string, bool) {
	if name == "reviews" {
		return "Reviews", true
	}
	return "", false
}

func TestFiltersApplied(t *testing.T) {
	h := NewEventHandler(nil, titles)

	out := h.HandleEvent(eventbus.FiltersAppliedEvent{List: "reviews", ActiveFilters: 2, ResultCount: 1500})
	assert.Equal(t, "Reviews: 1,500 results, 2 filters", out.Status)
	assert.False(t, out.StatusIsError)
	assert.Nil(t, out.SearchState)

	out = h.HandleEvent(eventbus.FiltersAppliedEvent{List: "elsewhere"})
	assert.Equal(t, Outcome{}, out)
}

func TestErrorEvent(t *testing.T) {
	h := NewEventHandler(nil, titles)

	out := h.HandleEvent(eventbus.ErrorEvent{Message: "import failed"})
	assert.Equal(t, Outcome{Status: "import failed", StatusIsError: true}, out)

	out = h.HandleEvent(eventbus.ErrorEvent{Err: errors.New("disk full")})
	assert.Equal(t, "disk full", out.Status)
}

func TestContentLoaded(t *testing.T) {
	h := NewEventHandler(nil, titles)
	out := h.HandleEvent(eventbus.ContentLoadedEvent{Titles: 1200, Watchlist: 3, CastAndCrew: 40, Collections: 2})
	assert.Equal(t, "Loaded 1,200 titles, 3 watchlist titles, 40 cast and crew, 2 collections", out.Status)
}

func TestSearchEventsReadServiceState(t *testing.T) {
	svc := search.NewService(brokenIndex{}, nil, search.Options{})
	h := NewEventHandler(svc, titles)

	require.Error(t, svc.Init(context.Background()))

	out := h.HandleEvent(eventbus.SearchUnavailableEvent{Err: errors.New("bundle missing")})
	require.NotNil(t, out.SearchState)
	assert.True(t, out.SearchState.Unavailable)
	assert.Equal(t, search.UnavailableMessage, out.Status)
	assert.True(t, out.StatusIsError)

	out = h.HandleEvent(eventbus.SearchStateChangedEvent{Generation: 1})
	require.NotNil(t, out.SearchState)
	assert.Empty(t, out.Status)
}

func TestSearchEventsWithoutService(t *testing.T) {
	h := NewEventHandler(nil, titles)
	out := h.HandleEvent(eventbus.SearchStateChangedEvent{})
	assert.Nil(t, out.SearchState)
}

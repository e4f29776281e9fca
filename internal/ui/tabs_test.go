package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"filmlog/internal/domain"
	"filmlog/internal/logic"
	uilogic "filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

func TestTabSummaryFormatsLargeCounts(t *testing.T) {
	members := make([]domain.CastAndCrewMember, 1234)
	for i := range members {
		members[i] = domain.CastAndCrewMember{Name: fmt.Sprintf("Person %04d", i), CreditedAs: []string{"performer"}}
	}
	tabs := NewLists(&logic.Content{CastAndCrew: members}, nil, 0)
	people := tabs[2]

	assert.Equal(t, "Showing 1,234 of 1,234 people", people.Summary())
	assert.False(t, people.HasMore())
}

func TestTabSummaryAfterFiltering(t *testing.T) {
	tabs := NewLists(testContent(), nil, 0)
	reviews := tabs[0]

	reviews.Dispatch(state.PendingFilterChangedAction{Key: uilogic.FilterTitle, Value: uilogic.Text("frank")})
	reviews.Dispatch(state.ApplyPendingFiltersAction{})

	assert.Equal(t, "Showing 1 of 1 titles (filtered from 3)", reviews.Summary())
	assert.Equal(t, "frank", reviews.Highlight())
	assert.Equal(t, "No matching titles.", reviews.EmptyMessage())
}

func TestTabPageSizeOverride(t *testing.T) {
	tabs := NewLists(testContent(), nil, 2)

	reviews := tabs[0]
	assert.True(t, reviews.HasMore())
	reviews.Dispatch(state.ShowMoreAction{})
	assert.False(t, reviews.HasMore())

	// unpaginated lists stay unpaginated
	assert.False(t, tabs[3].HasMore())
}

func TestEmptyTab(t *testing.T) {
	tabs := NewLists(&logic.Content{}, nil, 0)
	assert.Equal(t, "No titles yet.", tabs[1].EmptyMessage())
	assert.Empty(t, tabs[1].Rows())
	assert.Empty(t, tabs[1].Detail(0))
}

func TestDescribeTitle(t *testing.T) {
	text := describeTitle(domain.Title{
		Title:       "The Wolf Man",
		ReleaseYear: "1941",
		Genres:      []string{"Horror"},
		Directors:   []string{"George Waggner"},
	})
	assert.Contains(t, text, "The Wolf Man (1941)")
	assert.Contains(t, text, "Not reviewed")
	assert.Contains(t, text, "Directed by: George Waggner")
}

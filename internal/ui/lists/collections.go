package lists

import (
	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

func collectionName(c domain.Collection) string { return c.Name }
func collectionReviews(c domain.Collection) int { return c.ReviewCount }

// Collections returns the collections listing. It is not paginated.
func Collections() Listing[domain.Collection] {
	byName := logic.Ascending(collectionName)
	return Listing[domain.Collection]{
		Definition: &state.Definition[domain.Collection]{
			Name: NameCollections,
			Sorts: logic.SortTable[domain.Collection]{
				logic.SortNameAsc:         byName,
				logic.SortNameDesc:        logic.Descending(collectionName),
				logic.SortReviewCountAsc:  logic.ThenBy(logic.NumberAscending(collectionReviews), byName),
				logic.SortReviewCountDesc: logic.ThenBy(logic.NumberDescending(collectionReviews), byName),
			},
			Groups: logic.GroupTable[domain.Collection]{
				logic.SortNameAsc:         logic.LetterKey(collectionName),
				logic.SortNameDesc:        logic.LetterKey(collectionName),
				logic.SortReviewCountAsc:  logic.CountKey(collectionReviews),
				logic.SortReviewCountDesc: logic.CountKey(collectionReviews),
			},
			Dimensions: logic.Dimensions[domain.Collection]{
				logic.FilterName: logic.MatchText(collectionName),
			},
		},
		DefaultSort: logic.SortNameAsc,
		SortOptions: []SortOption{
			{logic.SortNameAsc, "Name (A → Z)"},
			{logic.SortNameDesc, "Name (Z → A)"},
			{logic.SortReviewCountDesc, "Review Count (Most First)"},
			{logic.SortReviewCountAsc, "Review Count (Fewest First)"},
		},
		Controls: []Control[domain.Collection]{
			{Key: logic.FilterName, Label: "Name", Kind: ControlText},
		},
	}
}

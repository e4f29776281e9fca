package lists

import (
	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

// Watchlist returns the listing of titles waiting to be reviewed
func Watchlist() Listing[domain.Title] {
	return Listing[domain.Title]{
		Definition: &state.Definition[domain.Title]{
			Name: NameWatchlist,
			Sorts: logic.SortTable[domain.Title]{
				logic.SortTitleAsc:        byTitle,
				logic.SortTitleDesc:       byTitleDesc,
				logic.SortReleaseDateAsc:  logic.SequenceAscending(titleRelease),
				logic.SortReleaseDateDesc: logic.SequenceDescending(titleRelease),
			},
			Groups: logic.GroupTable[domain.Title]{
				logic.SortTitleAsc:        logic.LetterKey(titleSortTitle),
				logic.SortTitleDesc:       logic.LetterKey(titleSortTitle),
				logic.SortReleaseDateAsc:  logic.YearKey(titleReleaseYear),
				logic.SortReleaseDateDesc: logic.YearKey(titleReleaseYear),
			},
			Dimensions: logic.Dimensions[domain.Title]{
				logic.FilterTitle:       logic.MatchText(titleName, titleSortTitle),
				logic.FilterDirector:    logic.MatchMember(titleDirectors),
				logic.FilterPerformer:   logic.MatchMember(titlePerformers),
				logic.FilterWriter:      logic.MatchMember(titleWriters),
				logic.FilterCollection:  logic.MatchMember(titleCollections),
				logic.FilterReleaseYear: logic.MatchRange(titleReleaseYear),
				logic.FilterGenres:      logic.MatchAll(titleGenres),
			},
			PageSize: state.DefaultPageSize,
		},
		DefaultSort: logic.SortReleaseDateAsc,
		SortOptions: []SortOption{
			{logic.SortReleaseDateDesc, "Release Date (Newest First)"},
			{logic.SortReleaseDateAsc, "Release Date (Oldest First)"},
			{logic.SortTitleAsc, "Title (A → Z)"},
			{logic.SortTitleDesc, "Title (Z → A)"},
		},
		Controls: []Control[domain.Title]{
			{Key: logic.FilterTitle, Label: "Title", Kind: ControlText},
			{Key: logic.FilterDirector, Label: "Director", Kind: ControlSelect, Field: titleDirectors},
			{Key: logic.FilterPerformer, Label: "Performer", Kind: ControlSelect, Field: titlePerformers},
			{Key: logic.FilterWriter, Label: "Writer", Kind: ControlSelect, Field: titleWriters},
			{Key: logic.FilterCollection, Label: "Collection", Kind: ControlSelect, Field: titleCollections},
			{Key: logic.FilterReleaseYear, Label: "Release Year", Kind: ControlRange, Field: one(titleReleaseYear)},
			{Key: logic.FilterGenres, Label: "Genres", Kind: ControlMultiSelect, Field: titleGenres},
		},
	}
}

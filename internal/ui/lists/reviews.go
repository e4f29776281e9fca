package lists

import (
	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

// Reviews returns the listing of titles shown on cast and crew and
// collection pages, mixing reviewed and unreviewed titles.
func Reviews() Listing[domain.Title] {
	return Listing[domain.Title]{
		Definition: &state.Definition[domain.Title]{
			Name: NameReviews,
			Sorts: logic.SortTable[domain.Title]{
				logic.SortTitleAsc:        byTitle,
				logic.SortTitleDesc:       byTitleDesc,
				logic.SortReleaseDateAsc:  logic.SequenceAscending(titleRelease),
				logic.SortReleaseDateDesc: logic.SequenceDescending(titleRelease),
				logic.SortReviewDateAsc:   logic.SequenceAscending(titleReview),
				logic.SortReviewDateDesc:  logic.SequenceDescending(titleReview),
				logic.SortGradeAsc:        logic.ThenBy(logic.NumberAscending(gradeOrMissing(logic.MissingGradeAsc)), byTitle),
				logic.SortGradeDesc:       logic.ThenBy(logic.NumberDescending(gradeOrMissing(logic.MissingGradeDesc)), byTitle),
			},
			Groups: logic.GroupTable[domain.Title]{
				logic.SortTitleAsc:        logic.LetterKey(titleSortTitle),
				logic.SortTitleDesc:       logic.LetterKey(titleSortTitle),
				logic.SortReleaseDateAsc:  logic.YearKey(titleReleaseYear),
				logic.SortReleaseDateDesc: logic.YearKey(titleReleaseYear),
				logic.SortReviewDateAsc:   logic.YearKey(titleReviewYear),
				logic.SortReviewDateDesc:  logic.YearKey(titleReviewYear),
				logic.SortGradeAsc:        logic.GradeKey(titleGrade),
				logic.SortGradeDesc:       logic.GradeKey(titleGrade),
			},
			Dimensions: logic.Dimensions[domain.Title]{
				logic.FilterTitle:       logic.MatchText(titleName, titleSortTitle),
				logic.FilterReleaseYear: logic.MatchRange(titleReleaseYear),
				logic.FilterReviewYear:  logic.MatchRange(titleReviewYear),
				logic.FilterGenres:      logic.MatchAll(titleGenres),
				logic.FilterGrade:       matchGradeRange,
				logic.FilterReviewed:    logic.MatchReviewed(titleSlug),
			},
			PageSize: state.DefaultPageSize,
		},
		DefaultSort: logic.SortReleaseDateAsc,
		SortOptions: []SortOption{
			{logic.SortReleaseDateDesc, "Release Date (Newest First)"},
			{logic.SortReleaseDateAsc, "Release Date (Oldest First)"},
			{logic.SortReviewDateDesc, "Review Date (Newest First)"},
			{logic.SortReviewDateAsc, "Review Date (Oldest First)"},
			{logic.SortTitleAsc, "Title (A → Z)"},
			{logic.SortTitleDesc, "Title (Z → A)"},
			{logic.SortGradeDesc, "Grade (Best First)"},
			{logic.SortGradeAsc, "Grade (Worst First)"},
		},
		Controls: []Control[domain.Title]{
			{Key: logic.FilterTitle, Label: "Title", Kind: ControlText},
			{Key: logic.FilterReviewed, Label: "Reviewed Status", Kind: ControlChoice, Choices: []string{
				string(logic.ChoiceAll), string(logic.ChoiceReviewed), string(logic.ChoiceNotReviewed),
			}},
			{Key: logic.FilterReleaseYear, Label: "Release Year", Kind: ControlRange, Field: one(titleReleaseYear)},
			{Key: logic.FilterReviewYear, Label: "Review Year", Kind: ControlRange, Field: one(titleReviewYear)},
			{Key: logic.FilterGrade, Label: "Grade", Kind: ControlRange, Choices: Grades},
			{Key: logic.FilterGenres, Label: "Genres", Kind: ControlMultiSelect, Field: titleGenres},
		},
	}
}

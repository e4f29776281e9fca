package lists

import (
	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/state"
)

// Credit kinds a cast and crew member may carry
var CreditKinds = []string{"director", "performer", "writer"}

func memberName(m domain.CastAndCrewMember) string { return m.Name }
func memberCredits(m domain.CastAndCrewMember) []string { return m.CreditedAs }
func memberReviews(m domain.CastAndCrewMember) int { return m.ReviewCount }

// CastAndCrew returns the cast and crew listing. It is not paginated.
func CastAndCrew() Listing[domain.CastAndCrewMember] {
	byName := logic.Ascending(memberName)
	return Listing[domain.CastAndCrewMember]{
		Definition: &state.Definition[domain.CastAndCrewMember]{
			Name: NameCastAndCrew,
			Sorts: logic.SortTable[domain.CastAndCrewMember]{
				logic.SortNameAsc:         byName,
				logic.SortNameDesc:        logic.Descending(memberName),
				logic.SortReviewCountAsc:  logic.ThenBy(logic.NumberAscending(memberReviews), byName),
				logic.SortReviewCountDesc: logic.ThenBy(logic.NumberDescending(memberReviews), byName),
			},
			Groups: logic.GroupTable[domain.CastAndCrewMember]{
				logic.SortNameAsc:         logic.LetterKey(memberName),
				logic.SortNameDesc:        logic.LetterKey(memberName),
				logic.SortReviewCountAsc:  logic.CountKey(memberReviews),
				logic.SortReviewCountDesc: logic.CountKey(memberReviews),
			},
			Dimensions: logic.Dimensions[domain.CastAndCrewMember]{
				logic.FilterName:       logic.MatchText(memberName),
				logic.FilterCreditedAs: logic.MatchMember(memberCredits),
			},
		},
		DefaultSort: logic.SortNameAsc,
		SortOptions: []SortOption{
			{logic.SortNameAsc, "Name (A → Z)"},
			{logic.SortNameDesc, "Name (Z → A)"},
			{logic.SortReviewCountDesc, "Review Count (Most First)"},
			{logic.SortReviewCountAsc, "Review Count (Fewest First)"},
		},
		Controls: []Control[domain.CastAndCrewMember]{
			{Key: logic.FilterName, Label: "Name", Kind: ControlText},
			{Key: logic.FilterCreditedAs, Label: "Credits", Kind: ControlSelect, Field: memberCredits, Choices: CreditKinds},
		},
	}
}

package lists

import (
	"fmt"

	"filmlog/internal/domain"
	"filmlog/internal/ui/logic"
)

// Grades from worst to best. A grade's value is its index plus one.
var Grades = []string{"F", "D-", "D", "D+", "C-", "C", "C+", "B-", "B", "B+", "A-", "A", "A+"}

// GradeValue returns the numeric value of a grade letter, or 0 if unknown
func GradeValue(grade string) int {
	for i, g := range Grades {
		if g == grade {
			return i + 1
		}
	}
	return 0
}

func titleName(t domain.Title) string { return t.Title }
func titleSortTitle(t domain.Title) string { return t.SortTitle }
func titleRelease(t domain.Title) string { return t.ReleaseSequence }
func titleReleaseYear(t domain.Title) string { return t.ReleaseYear }
func titleReview(t domain.Title) string { return t.ReviewSequence }
func titleReviewYear(t domain.Title) string { return t.ReviewYear }
func titleGrade(t domain.Title) string { return t.Grade }
func titleGenres(t domain.Title) []string { return t.Genres }
func titleSlug(t domain.Title) string { return t.Slug }
func titleDirectors(t domain.Title) []string { return t.Directors }
func titlePerformers(t domain.Title) []string { return t.Performers }
func titleWriters(t domain.Title) []string { return t.Writers }
func titleCollections(t domain.Title) []string { return t.Collections }

func gradeOrMissing(missing int) func(domain.Title) int {
	return func(t domain.Title) int {
		if !t.Graded() {
			return missing
		}
		return t.GradeValue
	}
}

// byTitle breaks ties on release sequence so remakes sharing a title keep a
// fixed order.
var byTitle = logic.ThenBy(
	logic.Ascending(titleSortTitle),
	logic.SequenceAscending(titleRelease),
)

var byTitleDesc = logic.ThenBy(
	logic.Descending(titleSortTitle),
	logic.SequenceDescending(titleRelease),
)

// matchGradeRange compiles a Range of grade letters into a check against
// GradeValue. Ungraded titles never match.
func matchGradeRange(value logic.FilterValue) (logic.Predicate[domain.Title], bool) {
	r, ok := value.(logic.Range)
	if !ok {
		panic(fmt.Sprintf("lists: grade filter given %T", value))
	}
	from, to := 1, len(Grades)
	if r.From != "" {
		from = mustGradeValue(r.From)
	}
	if r.To != "" {
		to = mustGradeValue(r.To)
	}
	return func(t domain.Title) bool {
		return t.Graded() && t.GradeValue >= from && t.GradeValue <= to
	}, true
}

func mustGradeValue(grade string) int {
	v := GradeValue(grade)
	if v == 0 {
		panic(fmt.Sprintf("lists: unknown grade %q", grade))
	}
	return v
}

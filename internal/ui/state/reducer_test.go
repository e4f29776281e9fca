package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmlog/internal/ui/logic"
)

type person struct {
	Name       string
	CreditedAs []string
	Year       string
}

func personName(p person) string { return p.Name }
func personCredits(p person) []string { return p.CreditedAs }
func personYear(p person) string { return p.Year }

func names(people []person) (out []string) {
	for _, p := range people {
		out = append(out, p.Name)
	}
	return out
}

func testDefinition(pageSize int) *Definition[person] {
	return &Definition[person]{
		Name: "people",
		Sorts: logic.SortTable[person]{
			logic.SortNameAsc:  logic.Ascending(personName),
			logic.SortNameDesc: logic.Descending(personName),
		},
		Groups: logic.GroupTable[person]{
			logic.SortNameAsc:  logic.LetterKey(personName),
			logic.SortNameDesc: logic.LetterKey(personName),
		},
		Dimensions: logic.Dimensions[person]{
			logic.FilterName:        logic.MatchText(personName),
			logic.FilterCreditedAs:  logic.MatchMember(personCredits),
			logic.FilterReleaseYear: logic.MatchRange(personYear),
		},
		PageSize: pageSize,
	}
}

func testPeople() []person {
	return []person{
		{Name: "John Wayne", CreditedAs: []string{"performer"}, Year: "1939"},
		{Name: "John Ford", CreditedAs: []string{"director"}, Year: "1939"},
		{Name: "Howard Hawks", CreditedAs: []string{"director", "writer"}, Year: "1959"},
		{Name: "Angie Dickinson", CreditedAs: []string{"performer"}, Year: "1959"},
		{Name: "Ward Bond", CreditedAs: []string{"performer"}, Year: "1956"},
	}
}

func apply(def *Definition[person], s List[person], key logic.FilterKey, value logic.FilterValue) List[person] {
	s = Reduce(def, s, PendingFilterChangedAction{Key: key, Value: value})
	return Reduce(def, s, ApplyPendingFiltersAction{})
}

func TestInit(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	assert.Equal(t, []string{"Angie Dickinson", "Howard Hawks", "John Ford", "John Wayne", "Ward Bond"}, names(s.FilteredValues))
	assert.Equal(t, []string{"A", "H", "J", "W"}, s.GroupedValues.Keys())
	assert.Equal(t, 5, s.PendingFilteredCount)
	assert.Equal(t, 0, s.ActiveFilterCount())
	assert.False(t, s.HasMore())
}

func TestInitWithInitialValues(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, logic.FilterValues{
		logic.FilterCreditedAs: logic.Text("director"),
		logic.FilterName:       logic.Text(""),
	})

	assert.Equal(t, []string{"Howard Hawks", "John Ford"}, names(s.FilteredValues))
	assert.Equal(t, 1, s.ActiveFilterCount())
	assert.Equal(t, []logic.FilterKey{logic.FilterCreditedAs}, s.ActiveFilterValues.Keys())
}

func TestNameFilterKeepsRelativeOrder(t *testing.T) {
	def := testDefinition(0)
	all := []person{{Name: "John Wayne"}, {Name: "John Ford"}, {Name: "Howard Hawks"}}
	// a constant comparator leaves input order untouched
	def.Sorts[logic.SortNameAsc] = func(a, b person) int { return 0 }
	s := Init(def, all, logic.SortNameAsc, nil)

	s = apply(def, s, logic.FilterName, logic.Text("John"))

	assert.Equal(t, []string{"John Wayne", "John Ford"}, names(s.FilteredValues))
}

func TestCreditedAsFilter(t *testing.T) {
	def := testDefinition(0)
	all := []person{
		{Name: "A", CreditedAs: []string{"director"}},
		{Name: "B", CreditedAs: []string{"performer"}},
		{Name: "C", CreditedAs: []string{"director", "writer"}},
	}
	s := Init(def, all, logic.SortNameAsc, nil)

	s = apply(def, s, logic.FilterCreditedAs, logic.Text("director"))

	assert.Equal(t, []string{"A", "C"}, names(s.FilteredValues))
}

func TestPendingFilterIsPreviewOnly(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	next := Reduce(def, s, PendingFilterChangedAction{Key: logic.FilterName, Value: logic.Text("john")})

	assert.Equal(t, 2, next.PendingFilteredCount)
	assert.Equal(t, 1, next.PendingFilterCount())
	assert.Equal(t, s.FilteredValues, next.FilteredValues)
	assert.Empty(t, next.ActiveFilterValues)
	assert.Empty(t, s.PendingFilterValues, "previous state must not be modified")
}

func TestSortKeepsFilters(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = apply(def, s, logic.FilterCreditedAs, logic.Text("performer"))

	s = Reduce(def, s, SortAction{Value: logic.SortNameDesc})

	assert.Equal(t, logic.SortNameDesc, s.Sort)
	assert.Equal(t, []string{"Ward Bond", "John Wayne", "Angie Dickinson"}, names(s.FilteredValues))
	assert.Equal(t, []string{"W", "J", "A"}, s.GroupedValues.Keys())
}

func TestSortUnknownValuePanics(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	assert.Panics(t, func() {
		Reduce(def, s, SortAction{Value: logic.SortGradeAsc})
	})
}

func TestClearPendingFilters(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = apply(def, s, logic.FilterName, logic.Text("john"))

	s = Reduce(def, s, ClearPendingFiltersAction{})

	assert.Empty(t, s.PendingFilterValues)
	assert.Equal(t, 0, s.PendingFilterCount())
	assert.Equal(t, 5, s.PendingFilteredCount)
	assert.Len(t, s.FilteredValues, 2, "clear does not apply")
	assert.Equal(t, 1, s.ActiveFilterCount())
}

func TestResetPendingFilters(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = apply(def, s, logic.FilterName, logic.Text("john"))
	s = Reduce(def, s, PendingFilterChangedAction{Key: logic.FilterCreditedAs, Value: logic.Text("director")})
	require.Equal(t, 1, s.PendingFilteredCount)

	s = Reduce(def, s, ResetPendingFiltersAction{})

	assert.Equal(t, s.ActiveFilterValues, s.PendingFilterValues)
	assert.Equal(t, 1, s.PendingFilterCount())
	assert.Equal(t, 2, s.PendingFilteredCount)
}

func TestApplyResetIdempotence(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = Reduce(def, s, PendingFilterChangedAction{Key: logic.FilterReleaseYear, Value: logic.Range{From: "1950", To: "1960"}})

	applied := Reduce(def, s, ApplyPendingFiltersAction{})
	reset := Reduce(def, applied, ResetPendingFiltersAction{})
	twice := Reduce(def, reset, ResetPendingFiltersAction{})

	assert.Equal(t, applied.ActiveFilterValues, reset.ActiveFilterValues)
	assert.Equal(t, names(applied.FilteredValues), names(reset.FilteredValues))
	assert.Equal(t, reset.PendingFilterValues, twice.PendingFilterValues)
	assert.Equal(t, reset.PendingFilteredCount, twice.PendingFilteredCount)
}

func TestPredicateAbsence(t *testing.T) {
	def := testDefinition(0)
	never := Init(def, testPeople(), logic.SortNameAsc, nil)

	tests := []struct {
		name  string
		key   logic.FilterKey
		value logic.FilterValue
	}{
		{"text", logic.FilterName, logic.Text("ward")},
		{"member", logic.FilterCreditedAs, logic.Text("writer")},
		{"range", logic.FilterReleaseYear, logic.Range{From: "1950"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := apply(def, never, tt.key, tt.value)
			require.Equal(t, 1, s.ActiveFilterCount())

			cleared := apply(def, s, tt.key, nil)

			assert.Equal(t, never.FilteredValues, cleared.FilteredValues)
			assert.Equal(t, 0, cleared.ActiveFilterCount())
			assert.NotContains(t, cleared.ActiveFilterValues, tt.key)
		})
	}
}

func TestApplyResetsShowCount(t *testing.T) {
	def := testDefinition(2)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = Reduce(def, s, ShowMoreAction{})
	require.Equal(t, 4, s.ShowCount)

	s = apply(def, s, logic.FilterName, logic.Text("o"))

	assert.Equal(t, 2, s.ShowCount)
	assert.Equal(t, 2, s.VisibleCount())
	assert.True(t, s.HasMore())
}

func TestShowMore(t *testing.T) {
	def := testDefinition(2)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	require.Equal(t, []string{"Angie Dickinson", "Howard Hawks"}, names(s.VisibleValues()))

	s = Reduce(def, s, ShowMoreAction{})
	assert.Equal(t, 4, s.GroupedValues.Total())

	s = Reduce(def, s, ShowMoreAction{Increment: 10})
	assert.Equal(t, 5, s.ShowCount)
	assert.Equal(t, 5, s.GroupedValues.Total())
	assert.False(t, s.HasMore())
}

func TestShowMoreWithoutPagination(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	next := Reduce(def, s, ShowMoreAction{Increment: 3})

	assert.Equal(t, s.ShowCount, next.ShowCount)
	assert.Equal(t, 5, next.VisibleCount())
}

func TestPaginationMonotonicity(t *testing.T) {
	def := testDefinition(1)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)
	s = apply(def, s, logic.FilterCreditedAs, logic.Text("performer"))

	previous := s.GroupedValues.Total()
	for i := range 6 {
		s = Reduce(def, s, ShowMoreAction{Increment: i})
		total := s.GroupedValues.Total()
		assert.GreaterOrEqual(t, total, previous)
		assert.LessOrEqual(t, total, len(s.FilteredValues))
		previous = total
	}
	assert.Equal(t, 3, previous)
}

func TestGroupedMatchesVisibleSlice(t *testing.T) {
	sorts := []logic.SortValue{logic.SortNameAsc, logic.SortNameDesc}
	filters := []logic.FilterValues{
		{},
		{logic.FilterName: logic.Text("a")},
		{logic.FilterCreditedAs: logic.Text("performer")},
		{logic.FilterReleaseYear: logic.Range{To: "1956"}, logic.FilterName: logic.Text("o")},
	}

	for _, pageSize := range []int{0, 1, 3} {
		def := testDefinition(pageSize)
		for _, sort := range sorts {
			for i, values := range filters {
				t.Run(fmt.Sprintf("page%d/%s/%d", pageSize, sort, i), func(t *testing.T) {
					s := Init(def, testPeople(), sort, nil)
					for k, v := range values {
						s = Reduce(def, s, PendingFilterChangedAction{Key: k, Value: v})
					}
					s = Reduce(def, s, ApplyPendingFiltersAction{})
					s = Reduce(def, s, ShowMoreAction{})

					want := logic.Sort(logic.Filter(testPeople(), def.Dimensions.Compile(values)), def.Sorts, sort)
					assert.Equal(t, want, s.FilteredValues)
					assert.Equal(t, s.FilteredValues[:s.VisibleCount()], s.GroupedValues.Flatten())
					for _, key := range s.GroupedValues.Keys() {
						for _, p := range s.GroupedValues.Get(key) {
							assert.Equal(t, key, def.Groups.KeyFor(sort)(p))
						}
					}
				})
			}
		}
	}
}

func TestNoGrouping(t *testing.T) {
	def := testDefinition(0)
	def.Groups = nil
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	assert.Nil(t, s.GroupedValues)
	assert.Equal(t, 0, s.GroupedValues.Len())
}

type unknownAction struct{}

func (unknownAction) Type() ActionType { return "unknown" }

func TestReduceUnknownActionPanics(t *testing.T) {
	def := testDefinition(0)
	s := Init(def, testPeople(), logic.SortNameAsc, nil)

	assert.Panics(t, func() { Reduce(def, s, unknownAction{}) })
}

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Name  string
	Seq   string
	Count int
	Tags  []string
	Year  string
	Slug  string
}

func itemName(i item) string { return i.Name }
func itemSeq(i item) string { return i.Seq }
func itemCount(i item) int { return i.Count }
func itemTags(i item) []string { return i.Tags }
func itemYear(i item) string { return i.Year }
func itemSlug(i item) string { return i.Slug }

func itemNames(items []item) (out []string) {
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

var testTable = SortTable[item]{
	SortNameAsc:         Ascending(itemName),
	SortNameDesc:        Descending(itemName),
	SortReleaseDateAsc:  SequenceAscending(itemSeq),
	SortReleaseDateDesc: SequenceDescending(itemSeq),
	SortReviewCountAsc:  ThenBy(NumberAscending(itemCount), Ascending(itemName)),
	SortReviewCountDesc: ThenBy(NumberDescending(itemCount), Ascending(itemName)),
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := []item{{Name: "b"}, {Name: "a"}, {Name: "c"}}

	sorted := Sort(input, testTable, SortNameAsc)

	assert.Equal(t, []string{"a", "b", "c"}, itemNames(sorted))
	assert.Equal(t, []string{"b", "a", "c"}, itemNames(input))
}

func TestSortIsStable(t *testing.T) {
	input := []item{{Name: "x", Count: 1, Seq: "1"}, {Name: "y", Count: 1, Seq: "2"}, {Name: "z", Count: 1, Seq: "3"}}
	byCount := SortTable[item]{SortReviewCountAsc: NumberAscending(itemCount)}

	assert.Equal(t, []string{"x", "y", "z"}, itemNames(Sort(input, byCount, SortReviewCountAsc)))
}

func TestSortCollation(t *testing.T) {
	input := []item{{Name: "Zorro"}, {Name: "élan"}, {Name: "Alien"}, {Name: "Elephant"}, {Name: "alpha"}}

	assert.Equal(t, []string{"Alien", "alpha", "élan", "Elephant", "Zorro"}, itemNames(Sort(input, testTable, SortNameAsc)))
	assert.Equal(t, []string{"Zorro", "Elephant", "élan", "alpha", "Alien"}, itemNames(Sort(input, testTable, SortNameDesc)))
}

func TestSortSequence(t *testing.T) {
	input := []item{
		{Name: "b", Seq: "1959-03-18tt2"},
		{Name: "a", Seq: "1959-03-18tt1"},
		{Name: "c", Seq: "1939-03-02tt3"},
	}

	assert.Equal(t, []string{"c", "a", "b"}, itemNames(Sort(input, testTable, SortReleaseDateAsc)))
	assert.Equal(t, []string{"b", "a", "c"}, itemNames(Sort(input, testTable, SortReleaseDateDesc)))
}

func TestSortThenBy(t *testing.T) {
	input := []item{{Name: "b", Count: 2}, {Name: "c", Count: 5}, {Name: "a", Count: 2}}

	assert.Equal(t, []string{"c", "a", "b"}, itemNames(Sort(input, testTable, SortReviewCountDesc)))
	assert.Equal(t, []string{"a", "b", "c"}, itemNames(Sort(input, testTable, SortReviewCountAsc)))
}

func TestSortUnknownValuePanics(t *testing.T) {
	assert.PanicsWithValue(t, `logic: no comparator for sort value "grade-asc"`, func() {
		Sort([]item{{Name: "a"}}, testTable, SortGradeAsc)
	})
}

func TestSortTableValues(t *testing.T) {
	table := SortTable[item]{SortNameDesc: Descending(itemName), SortNameAsc: Ascending(itemName)}
	assert.Equal(t, []SortValue{SortNameAsc, SortNameDesc}, table.Values())
}

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupPreservesOrder(t *testing.T) {
	items := []item{{Name: "Bob"}, {Name: "alice"}, {Name: "Brian"}, {Name: "Anna"}, {Name: "7th Heaven"}}

	g := Group(items, LetterKey(itemName))

	assert.Equal(t, []string{"B", "A", "#"}, g.Keys())
	assert.Equal(t, []string{"Bob", "Brian"}, itemNames(g.Get("B")))
	assert.Equal(t, []string{"alice", "Anna"}, itemNames(g.Get("A")))
	assert.Equal(t, 5, g.Total())
	assert.Equal(t, []string{"Bob", "Brian", "alice", "Anna", "7th Heaven"}, itemNames(g.Flatten()))
}

func TestFirstLetter(t *testing.T) {
	tests := map[string]string{
		"Élan":       "E",
		"  zorro":    "Z",
		"Ørsted":     "O",
		"Łukasz Żak": "L",
		"Żak":        "Z",
		"Øystein":    "O",
		"Ærø":        "A",
		"12 Angry":   "#",
		"ñandu":      "N",
		"(500) Days": "#",
		"":           "#",
		"Çà et là":   "C",
		"日本":         "#",
	}
	for in, want := range tests {
		assert.Equal(t, want, FirstLetter(in), "FirstLetter(%q)", in)
	}
}

func TestYearKey(t *testing.T) {
	key := YearKey(itemYear)

	assert.Equal(t, "1959", key(item{Year: "1959"}))
	assert.Equal(t, "2021", key(item{Year: "2021-05-01-001"}))
	assert.Equal(t, GroupUnknown, key(item{}))
}

func TestGradeKey(t *testing.T) {
	key := GradeKey(func(i item) string { return i.Slug })

	assert.Equal(t, "B", key(item{Slug: "B+"}))
	assert.Equal(t, "A", key(item{Slug: "a-"}))
	assert.Equal(t, GroupUnrated, key(item{}))
}

func TestCountKey(t *testing.T) {
	assert.Equal(t, "12", CountKey(itemCount)(item{Count: 12}))
}

func TestGroupTableMissingKeyPanics(t *testing.T) {
	table := GroupTable[item]{SortNameAsc: LetterKey(itemName)}

	assert.NotPanics(t, func() { table.KeyFor(SortNameAsc) })
	assert.Panics(t, func() { table.KeyFor(SortGradeAsc) })
}

func TestNilGroups(t *testing.T) {
	var g *Groups[item]

	assert.Nil(t, g.Keys())
	assert.Nil(t, g.Get("A"))
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Flatten())
}
